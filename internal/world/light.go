package world

import (
	"github.com/annel0/voxel-engine/internal/block"
)

// lightNode — элемент очереди распространения света
type lightNode struct {
	x, y, z int
	level   uint8
}

// Шесть соседних направлений
var lightDirs = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// PropagateBlockLight пересчитывает блочное освещение чанка с нуля.
// BFS от всех излучающих блоков, уровень падает на 1 за шаг.
// Распространение строго внутри чанка: свет не пересекает границы.
func PropagateBlockLight(c *Chunk) {
	for i := range c.lightLevels {
		c.lightLevels[i] = 0
	}

	var queue []lightNode
	for y := c.chunkMinY; y <= c.chunkMaxY && y < ChunkSizeY; y++ {
		for z := 0; z < ChunkSizeZ; z++ {
			for x := 0; x < ChunkSizeX; x++ {
				emission := block.Emission(c.Block(x, y, z))
				if emission > 0 {
					c.SetLightLevel(x, y, z, emission)
					queue = append(queue, lightNode{x, y, z, emission})
				}
			}
		}
	}

	propagateQueue(c, queue)
}

// propagateQueue — ядро BFS: ячейка обновляется, только если новый
// уровень строго больше текущего; так пересечения источников
// сходятся к максимуму без повторных волн.
func propagateQueue(c *Chunk, queue []lightNode) {
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		if n.level <= 1 {
			continue
		}
		next := n.level - 1

		for _, d := range lightDirs {
			nx, ny, nz := n.x+d[0], n.y+d[1], n.z+d[2]
			if nx < 0 || nx >= ChunkSizeX || ny < 0 || ny >= ChunkSizeY || nz < 0 || nz >= ChunkSizeZ {
				continue
			}
			id := c.Block(nx, ny, nz)
			props := block.Props(id)
			// Непрозрачные твердые блоки гасят свет
			if props.Solid && !props.Transparent {
				continue
			}
			if c.LightLevel(nx, ny, nz) >= next {
				continue
			}
			c.SetLightLevel(nx, ny, nz, next)
			queue = append(queue, lightNode{nx, ny, nz, next})
		}
	}
}

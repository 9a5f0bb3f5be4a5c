package meshing

import (
	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/world"
)

// chunkView — read-only вид на чанк с выходом за горизонтальные границы
// через сэмплер соседей. Мешер никогда не разыменовывает отсутствующего
// соседа: вне данных всегда воздух.
type chunkView struct {
	chunk     *world.Chunk
	neighbors BlockSampler
	light     LightSampler
	baseX     int
	baseZ     int
}

func newChunkView(c *world.Chunk, neighbors BlockSampler, light LightSampler) *chunkView {
	baseX, baseZ := c.Coords.WorldOrigin()
	return &chunkView{
		chunk:     c,
		neighbors: neighbors,
		light:     light,
		baseX:     baseX,
		baseZ:     baseZ,
	}
}

// Block возвращает блок по локальным координатам чанка.
// x и z могут выходить за [0,16): запрос уходит соседям.
func (v *chunkView) Block(x, y, z int) block.BlockID {
	if y < 0 || y >= world.ChunkSizeY {
		return block.AirID
	}
	if x >= 0 && x < world.ChunkSizeX && z >= 0 && z < world.ChunkSizeZ {
		return v.chunk.Block(x, y, z)
	}
	if v.neighbors == nil {
		return block.AirID
	}
	return v.neighbors(v.baseX+x, y, v.baseZ+z)
}

// Light возвращает блочный свет по локальным координатам
func (v *chunkView) Light(x, y, z int) uint8 {
	if y < 0 || y >= world.ChunkSizeY {
		return 0
	}
	if x >= 0 && x < world.ChunkSizeX && z >= 0 && z < world.ChunkSizeZ {
		return v.chunk.LightLevel(x, y, z)
	}
	if v.light == nil {
		return 0
	}
	return v.light(v.baseX+x, y, v.baseZ+z)
}

// Opaque сообщает, является ли блок непрозрачным заслоном для граней
func (v *chunkView) Opaque(x, y, z int) bool {
	props := block.Props(v.Block(x, y, z))
	return props.Solid && !props.Transparent
}

// SolidAt сообщает твердость блока для расчета затенения
func (v *chunkView) SolidAt(x, y, z int) bool {
	return block.IsSolid(v.Block(x, y, z))
}

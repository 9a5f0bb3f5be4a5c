package world

import (
	"github.com/annel0/voxel-engine/internal/block"
)

// oreType описывает параметры размещения одной руды
type oreType struct {
	id       block.BlockID
	minY     int
	maxY     int
	veinSize int // максимум блоков в жиле
	attempts int // попыток жил на чанк
}

// Таблица руд: редкость растет сверху вниз
var oreTable = []oreType{
	{block.CoalOreID, 5, 128, 16, 14},
	{block.IronOreID, 5, 64, 10, 8},
	{block.GoldOreID, 5, 32, 8, 3},
	{block.DiamondOreID, 5, 16, 7, 2},
}

const saltOres = 77001

// oreFieldThreshold отсекает старты жил вне рудоносных областей объемного
// шума: руда ложится кластерами, а не равномерно по чанку
const oreFieldThreshold = -0.3

// placeOres раскидывает рудные жилы случайным блужданием по чанку.
// Руда замещает только камень, поэтому жилы обрезаются пещерами.
func (g *TerrainGenerator) placeOres(chunk *Chunk) {
	rng := newChunkRand(g.seed, chunk.Coords, saltOres)

	for _, ore := range oreTable {
		for attempt := 0; attempt < ore.attempts; attempt++ {
			span := ore.maxY - ore.minY
			fx := float64(rng.Intn(ChunkSizeX))
			fy := float64(ore.minY + rng.Intn(span))
			fz := float64(rng.Intn(ChunkSizeZ))

			wx := float64(chunk.Coords.X*ChunkSizeX) + fx
			wz := float64(chunk.Coords.Z*ChunkSizeZ) + fz
			if g.noises.Ore.Sample(wx, fy, wz) < oreFieldThreshold {
				continue
			}

			for step := 0; step < ore.veinSize; step++ {
				x, y, z := int(fx), int(fy), int(fz)
				if x >= 0 && x < ChunkSizeX && z >= 0 && z < ChunkSizeZ &&
					y >= 1 && y < ChunkSizeY {
					if chunk.Block(x, y, z) == block.StoneID {
						chunk.SetBlock(x, y, z, ore.id)
					}
				}
				// Шаг блуждания до 1.5 блока по каждой оси
				fx += (rng.Float64() - 0.5) * 3.0
				fy += (rng.Float64() - 0.5) * 3.0
				fz += (rng.Float64() - 0.5) * 3.0
			}
		}
	}
}

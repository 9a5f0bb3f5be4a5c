package world

import (
	"math"

	"github.com/annel0/voxel-engine/internal/block"
)

// Пороги прорезания пещер. Подобраны так, чтобы cheese-полости
// давали крупные залы, а spaghetti — узкие извилистые туннели.
const (
	cheeseThreshold     = 0.62 // базовый порог залов
	cheeseThresholdMid  = 0.58 // смягченный порог на глубинах 20..60
	spaghettiThreshold  = 0.12 // толщина туннелей
	spaghettiWideThresh = 0.07 // широкий соединительный слой
	entranceThreshold   = 0.55 // входы с поверхности
	entranceDepth       = 24   // глубина воронки входа

	aquiferZoneThreshold = 0.55 // зона водоносного горизонта
	aquiferGateThreshold = 0.88 // точечные озерца вне зоны
	lavaDepth            = 11   // ниже этой высоты затопление лавой
)

// carveCaves вырезает пещеры трех типов и заполняет часть полостей
// водоносными горизонтами. Работает только по уже залитым колонкам.
func (g *TerrainGenerator) carveCaves(chunk *Chunk, columns *[ChunkSizeX][ChunkSizeZ]columnInfo) {
	baseX, baseZ := chunk.Coords.WorldOrigin()

	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			col := columns[x][z]
			wx, wz := float64(baseX+x), float64(baseZ+z)

			// Входы генерируются только на суше выше уровня моря,
			// иначе пещеры вскрывали бы морское дно и затапливались
			surfaceOpen := col.height > SeaLevel+3
			var entrance float64
			if surfaceOpen {
				entrance = g.noises.CaveEntrance.Sample(wx, wz)
			}

			top := col.height
			if top > ChunkSizeY-2 {
				top = ChunkSizeY - 2
			}

			for y := 1; y <= top; y++ {
				id := chunk.Block(x, y, z)
				if id == block.BedrockID || id == block.WaterID || id == block.AirID {
					continue
				}

				carved := false
				wy := float64(y)

				// Воронкообразные входы: порог падает к поверхности
				if surfaceOpen && y > col.height-entranceDepth {
					depth := float64(col.height - y)
					widen := (1.0 - depth/entranceDepth) * 0.12
					if entrance > entranceThreshold+0.12-widen {
						carved = true
					}
				}

				// Cheese: крупные залы по среднему двух 3D-шумов
				if !carved && y < col.height-4 {
					threshold := cheeseThreshold
					if y >= 20 && y <= 60 {
						threshold = cheeseThresholdMid
					}
					n := (g.noises.Cave1.Sample(wx, wy, wz) + g.noises.Cave2.Sample(wx, wy, wz)) / 2.0
					if n > threshold {
						carved = true
					}
				}

				// Spaghetti: туннели вдоль нулевых поверхностей двух шумов
				if !carved && y < col.height-4 {
					s1 := g.noises.Cave1.Sample(wx*1.7, wy*1.7, wz*1.7)
					s2 := g.noises.Cave2.Sample(wx*1.7, wy*1.7, wz*1.7)
					if math.Abs(s1)+math.Abs(s2) < spaghettiThreshold {
						carved = true
					} else {
						// Широкий соединительный слой на низкой частоте
						w1 := g.noises.Cave1.Sample(wx*0.6, wy*0.6, wz*0.6)
						w2 := g.noises.Cave2.Sample(wx*0.6, wy*0.6, wz*0.6)
						if math.Abs(w1)+math.Abs(w2) < spaghettiWideThresh {
							carved = true
						}
					}
				}

				if !carved {
					continue
				}

				floorSolid := block.IsSolid(chunk.Block(x, y-1, z))
				if fill, level := g.aquiferFill(wx, wy, wz, y, floorSolid); fill != block.AirID {
					chunk.SetBlock(x, y, z, fill)
					if fill == block.WaterID {
						chunk.SetWaterLevel(x, y, z, level)
					}
				} else {
					chunk.SetBlock(x, y, z, block.AirID)
				}
			}
		}
	}
}

// aquiferFill решает, чем затопить вырезанную ячейку: вода, лава или воздух.
// Глубже lavaDepth вместо воды всегда лава. Точечные озерца через строгий
// 3D-гейт требуют твердого пола под ячейкой.
func (g *TerrainGenerator) aquiferFill(wx, wy, wz float64, y int, floorSolid bool) (block.BlockID, uint8) {
	if y >= SeaLevel {
		return block.AirID, 0
	}

	flooded := false
	if g.noises.AquiferZone.Sample(wx, wz) > aquiferZoneThreshold {
		flooded = true
	} else if floorSolid && g.noises.AquiferGate.Sample(wx, wy, wz) > aquiferGateThreshold {
		flooded = true
	}
	if !flooded {
		return block.AirID, 0
	}

	if y < lavaDepth {
		return block.LavaID, 0
	}
	return block.WaterID, WaterSource
}

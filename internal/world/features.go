package world

import (
	"github.com/annel0/voxel-engine/internal/block"
)

// canopyShape — форма кроны дерева
type canopyShape int

const (
	canopyRound canopyShape = iota
	canopyDiamond
	canopyConical
	canopyFlat
	canopyDrooping
)

// treeVariant описывает один вид дерева
type treeVariant struct {
	trunk       block.BlockID
	leaves      block.BlockID
	minTrunk    int
	maxTrunk    int
	shape       canopyShape
	doubleTrunk bool
}

var (
	oakTree = treeVariant{
		trunk: block.OakLogID, leaves: block.OakLeavesID,
		minTrunk: 4, maxTrunk: 6, shape: canopyRound,
	}
	darkOakTree = treeVariant{
		trunk: block.DarkOakLogID, leaves: block.DarkLeavesID,
		minTrunk: 6, maxTrunk: 8, shape: canopyRound, doubleTrunk: true,
	}
	birchTree = treeVariant{
		trunk: block.BirchLogID, leaves: block.BirchLeavesID,
		minTrunk: 5, maxTrunk: 7, shape: canopyDiamond,
	}
	spruceTree = treeVariant{
		trunk: block.SpruceLogID, leaves: block.SpruceLeafID,
		minTrunk: 6, maxTrunk: 9, shape: canopyConical,
	}
	acaciaTree = treeVariant{
		trunk: block.AcaciaLogID, leaves: block.AcaciaLeafID,
		minTrunk: 4, maxTrunk: 6, shape: canopyFlat,
	}
	swampOakTree = treeVariant{
		trunk: block.OakLogID, leaves: block.OakLeavesID,
		minTrunk: 5, maxTrunk: 7, shape: canopyDrooping,
	}
)

const saltFeatures = 88001

// Отступ от края чанка: крона радиусом 2 не должна выходить за границу,
// чтобы декорации не зависели от соседних чанков
const featureMargin = 2

// featureChance возвращает вероятность дерева/кактуса в колонке биома
func featureChance(biome BiomeType) float64 {
	switch biome {
	case BiomeForest, BiomeTaiga:
		return 0.08
	case BiomeDarkForest:
		return 0.12
	case BiomeBirchForest:
		return 0.07
	case BiomeSwamp:
		return 0.05
	case BiomeSavanna:
		return 0.015
	case BiomePlains:
		return 0.006
	case BiomeDesert:
		return 0.012
	default:
		return 0
	}
}

// treeForBiome выбирает вид дерева для биома
func treeForBiome(biome BiomeType, rng *chunkRand) (treeVariant, bool) {
	switch biome {
	case BiomeForest, BiomePlains:
		if rng.Float64() < 0.15 {
			return birchTree, true
		}
		return oakTree, true
	case BiomeBirchForest:
		return birchTree, true
	case BiomeDarkForest:
		return darkOakTree, true
	case BiomeTaiga:
		return spruceTree, true
	case BiomeSavanna:
		return acaciaTree, true
	case BiomeSwamp:
		return swampOakTree, true
	default:
		return treeVariant{}, false
	}
}

// placeFeatures размещает деревья и кактусы поверх сгенерированного рельефа.
// Обход строго по порядку x,z: иначе ломается детерминизм LCG.
func (g *TerrainGenerator) placeFeatures(chunk *Chunk, columns *[ChunkSizeX][ChunkSizeZ]columnInfo) {
	rng := newChunkRand(g.seed, chunk.Coords, saltFeatures)

	for x := featureMargin; x < ChunkSizeX-featureMargin; x++ {
		for z := featureMargin; z < ChunkSizeZ-featureMargin; z++ {
			col := columns[x][z]
			chance := featureChance(col.biome)
			if chance == 0 || rng.Float64() >= chance {
				continue
			}

			surfaceY := col.height
			if surfaceY <= SeaLevel || surfaceY >= ChunkSizeY-12 {
				continue
			}
			ground := chunk.Block(x, surfaceY, z)

			if col.biome == BiomeDesert {
				if ground == block.SandID {
					g.placeCactus(chunk, x, surfaceY+1, z, rng)
				}
				continue
			}

			if ground != block.GrassID && ground != block.DirtID {
				continue
			}
			variant, ok := treeForBiome(col.biome, rng)
			if !ok {
				continue
			}
			g.placeTree(chunk, x, surfaceY+1, z, variant, rng)
		}
	}
}

// placeCactus ставит кактус высотой 1..3
func (g *TerrainGenerator) placeCactus(chunk *Chunk, x, y, z int, rng *chunkRand) {
	height := 1 + rng.Intn(3)
	for i := 0; i < height; i++ {
		if chunk.Block(x, y+i, z) != block.AirID {
			return
		}
		chunk.SetBlock(x, y+i, z, block.CactusID)
	}
}

// placeTree строит дерево: ствол, затем крона по форме варианта.
// Существующие блоки (кроме воздуха) не перезаписываются.
func (g *TerrainGenerator) placeTree(chunk *Chunk, x, y, z int, v treeVariant, rng *chunkRand) {
	trunkHeight := v.minTrunk + rng.Intn(v.maxTrunk-v.minTrunk+1)
	if y+trunkHeight+3 >= ChunkSizeY {
		return
	}

	// Ствол
	for i := 0; i < trunkHeight; i++ {
		setIfAir(chunk, x, y+i, z, v.trunk)
		if v.doubleTrunk {
			setIfAir(chunk, x+1, y+i, z, v.trunk)
			setIfAir(chunk, x, y+i, z+1, v.trunk)
			setIfAir(chunk, x+1, y+i, z+1, v.trunk)
		}
	}

	topY := y + trunkHeight
	switch v.shape {
	case canopyRound:
		g.roundCanopy(chunk, x, topY, z, v.leaves, v.doubleTrunk)
	case canopyDiamond:
		g.diamondCanopy(chunk, x, topY, z, v.leaves)
	case canopyConical:
		g.conicalCanopy(chunk, x, y, topY, z, v.leaves)
	case canopyFlat:
		g.flatCanopy(chunk, x, topY, z, v.leaves)
	case canopyDrooping:
		g.droopingCanopy(chunk, x, topY, z, v.leaves)
	}
}

// setIfAir ставит блок только в пустую ячейку
func setIfAir(chunk *Chunk, x, y, z int, id block.BlockID) {
	if x < 0 || x >= ChunkSizeX || z < 0 || z >= ChunkSizeZ || y < 0 || y >= ChunkSizeY {
		return
	}
	if chunk.Block(x, y, z) == block.AirID {
		chunk.SetBlock(x, y, z, id)
	}
}

// roundCanopy — шарообразная крона 5×5 с обрезанными углами
func (g *TerrainGenerator) roundCanopy(chunk *Chunk, x, topY, z int, leaves block.BlockID, wide bool) {
	radius := 2
	if wide {
		radius = 3
	}
	for dy := -2; dy <= 1; dy++ {
		r := radius
		if dy == 1 || dy == -2 {
			r = radius - 1
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if dx*dx+dz*dz > r*r+1 {
					continue
				}
				setIfAir(chunk, x+dx, topY+dy, z+dz, leaves)
			}
		}
	}
	setIfAir(chunk, x, topY+2, z, leaves)
}

// diamondCanopy — ромбовидная крона березы
func (g *TerrainGenerator) diamondCanopy(chunk *Chunk, x, topY, z int, leaves block.BlockID) {
	for dy := -2; dy <= 2; dy++ {
		r := 2 - abs(dy)
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if abs(dx)+abs(dz) > r {
					continue
				}
				setIfAir(chunk, x+dx, topY+dy, z+dz, leaves)
			}
		}
	}
}

// conicalCanopy — коническая ель: ярусы сужаются кверху
func (g *TerrainGenerator) conicalCanopy(chunk *Chunk, x, baseY, topY, z int, leaves block.BlockID) {
	start := baseY + 2
	for y := start; y <= topY+1; y++ {
		// Радиус чередуется 2/1 по ярусам и сходит в точку наверху
		r := 1 + (topY-y)%2
		if y >= topY {
			r = 0
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if abs(dx) == r && abs(dz) == r && r > 1 {
					continue
				}
				setIfAir(chunk, x+dx, y, z+dz, leaves)
			}
		}
	}
	setIfAir(chunk, x, topY+1, z, leaves)
}

// flatCanopy — плоская зонтичная крона акации
func (g *TerrainGenerator) flatCanopy(chunk *Chunk, x, topY, z int, leaves block.BlockID) {
	for dx := -3; dx <= 3; dx++ {
		for dz := -3; dz <= 3; dz++ {
			if dx*dx+dz*dz > 10 {
				continue
			}
			setIfAir(chunk, x+dx, topY, z+dz, leaves)
		}
	}
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			setIfAir(chunk, x+dx, topY+1, z+dz, leaves)
		}
	}
}

// droopingCanopy — крона болотного дуба со свисающими краями
func (g *TerrainGenerator) droopingCanopy(chunk *Chunk, x, topY, z int, leaves block.BlockID) {
	for dy := -1; dy <= 1; dy++ {
		r := 3
		if dy == 1 {
			r = 2
		}
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				if dx*dx+dz*dz > r*r+1 {
					continue
				}
				setIfAir(chunk, x+dx, topY+dy, z+dz, leaves)
			}
		}
	}
	// Свисающие пряди по периметру
	for _, d := range [][2]int{{3, 0}, {-3, 0}, {0, 3}, {0, -3}, {2, 2}, {-2, 2}, {2, -2}, {-2, -2}} {
		setIfAir(chunk, x+d[0], topY-2, z+d[1], leaves)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package meshing

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

// Рендер привязывается к раскладке вершины побайтово
func TestPackedVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(16), unsafe.Sizeof(PackedVertex{}),
		"Упакованная вершина обязана занимать ровно 16 байт")
}

// Одиночный блок в пустом чанке: 6 квадов, по 6 вершин на квад
func TestSingleBlockMesh(t *testing.T) {
	chunk := world.NewChunk(vec.Vec2{})
	chunk.SetBlock(8, 100, 8, block.StoneID)

	result := BuildMesh(chunk, nil, nil)
	sub := &result.SubChunks[100/world.SubChunkSize]

	require.Equal(t, 36, len(sub.LODs[0]), "6 граней по 2 треугольника")
	assert.False(t, sub.IsEmpty)

	// Все 6 нормалей представлены
	normals := map[uint8]int{}
	for _, v := range sub.LODs[0] {
		normals[v.Normal]++
	}
	assert.Len(t, normals, 6, "Каждое направление дает по одной грани")

	// Полностью открытый блок не затенен
	for _, v := range sub.LODs[0] {
		assert.Equal(t, uint8(255), v.AO, "Изолированный блок без затенения")
	}

	// Остальные подчанки пусты
	assert.True(t, result.SubChunks[0].IsEmpty)
	assert.Equal(t, 0, len(result.SubChunks[0].LODs[0]))
}

// faceCell — единичный фрагмент грани для сравнения жадного и наивного мешеров
type faceCell struct {
	x, y, z int // локальные координаты чанка
	normal  int
}

// decomposeQuads разбирает вершинный поток на единичные фрагменты граней
func decomposeQuads(t *testing.T, verts []PackedVertex, subIdx int) map[faceCell]int {
	require.Zero(t, len(verts)%6, "Поток вершин кратен шести")
	baseY := subIdx * world.SubChunkSize
	cells := map[faceCell]int{}

	for i := 0; i < len(verts); i += 6 {
		quad := verts[i : i+6]
		normal := int(quad[0].Normal)
		dir := directions[normal]

		min := [3]int{1 << 20, 1 << 20, 1 << 20}
		max := [3]int{-1, -1, -1}
		for _, v := range quad {
			p := [3]int{int(v.X) / FixedOne, int(v.Y) / FixedOne, int(v.Z) / FixedOne}
			for a := 0; a < 3; a++ {
				if p[a] < min[a] {
					min[a] = p[a]
				}
				if p[a] > max[a] {
					max[a] = p[a]
				}
			}
		}

		// Плоскость грани вырождена вдоль оси нормали
		require.Equal(t, min[dir.axisL], max[dir.axisL], "Квад обязан быть плоским")
		layer := min[dir.axisL]
		if dir.sign > 0 {
			layer--
		}

		for u := min[dir.axisU]; u < max[dir.axisU]; u++ {
			for v := min[dir.axisV]; v < max[dir.axisV]; v++ {
				var c [3]int
				c[dir.axisL] = layer
				c[dir.axisU] = u
				c[dir.axisV] = v
				cells[faceCell{c[0], baseY + c[1], c[2], normal}]++
			}
		}
	}
	return cells
}

// naiveFaceCells строит эталонный набор видимых граней прямым перебором
func naiveFaceCells(view *chunkView, subIdx int) map[faceCell]int {
	baseY := subIdx * world.SubChunkSize
	cells := map[faceCell]int{}

	for ly := 0; ly < world.SubChunkSize; ly++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			for x := 0; x < world.ChunkSizeX; x++ {
				y := baseY + ly
				if !block.IsSolid(view.Block(x, y, z)) {
					continue
				}
				for n, d := range [6][3]int{
					{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
				} {
					if !view.Opaque(x+d[0], y+d[1], z+d[2]) {
						cells[faceCell{x, y, z, n}]++
					}
				}
			}
		}
	}
	return cells
}

// Жадный мешер выкладывает ровно тот же набор фрагментов граней,
// что и наивный посекционный перебор
func TestGreedyMatchesNaive(t *testing.T) {
	gen := world.NewTerrainGenerator(12345)
	chunk := gen.Generate(vec.Vec2{X: 1, Z: 1})
	view := newChunkView(chunk, nil, nil)

	result := BuildMesh(chunk, nil, nil)

	for sub := 0; sub < world.SubChunkCount; sub++ {
		greedy := decomposeQuads(t, result.SubChunks[sub].LODs[0], sub)
		naive := naiveFaceCells(view, sub)

		require.Equal(t, len(naive), len(greedy),
			"Подчанк %d: число фрагментов должно совпадать", sub)
		for cell, n := range greedy {
			require.Equal(t, 1, n, "Фрагмент %+v выложен дважды", cell)
			require.Contains(t, naive, cell, "Лишний фрагмент %+v", cell)
		}
	}
}

// Граница чанков: против загруженного соседа грани строятся по его
// данным, и на общей плоскости нет ни дублей, ни дыр
func TestBorderComplement(t *testing.T) {
	gen := world.NewTerrainGenerator(12345)
	left := gen.Generate(vec.Vec2{X: 0, Z: 0})
	right := gen.Generate(vec.Vec2{X: 1, Z: 0})

	sampler := func(chunks ...*world.Chunk) BlockSampler {
		index := map[vec.Vec2]*world.Chunk{}
		for _, c := range chunks {
			index[c.Coords] = c
		}
		return func(wx, wy, wz int) block.BlockID {
			c, ok := index[world.WorldToChunk(wx, wz)]
			if !ok {
				return block.AirID
			}
			lx, ly, lz := world.WorldToLocal(wx, wy, wz)
			return c.Block(lx, ly, lz)
		}
	}

	leftMesh := BuildMesh(left, sampler(right), nil)
	rightMesh := BuildMesh(right, sampler(left), nil)

	// Фрагменты на общей плоскости x=16 (мировая)
	type borderCell struct{ y, z int }
	eastFaces := map[borderCell]int{}
	westFaces := map[borderCell]int{}

	for sub := 0; sub < world.SubChunkCount; sub++ {
		for cell, n := range decomposeQuads(t, leftMesh.SubChunks[sub].LODs[0], sub) {
			if cell.normal == NormalEast && cell.x == world.ChunkSizeX-1 {
				eastFaces[borderCell{cell.y, cell.z}] += n
			}
		}
		for cell, n := range decomposeQuads(t, rightMesh.SubChunks[sub].LODs[0], sub) {
			if cell.normal == NormalWest && cell.x == 0 {
				westFaces[borderCell{cell.y, cell.z}] += n
			}
		}
	}

	// Для непрозрачного рельефа грань на плоскости может идти только
	// с одной стороны: твердое против воздуха
	for bc := range eastFaces {
		lb := left.Block(world.ChunkSizeX-1, bc.y, bc.z)
		rb := right.Block(0, bc.y, bc.z)
		if block.IsTransparent(lb) || block.IsTransparent(rb) {
			continue
		}
		_, dup := westFaces[bc]
		assert.False(t, dup, "Дубль грани на границе в (%d,%d)", bc.y, bc.z)
	}

	// Каждый переход "камень слева — воздух справа" закрыт восточной гранью
	for y := 0; y < world.ChunkSizeY; y++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			lb := left.Block(world.ChunkSizeX-1, y, z)
			rb := right.Block(0, y, z)
			if lb == block.StoneID && rb == block.AirID {
				assert.Contains(t, eastFaces, borderCell{y, z},
					"Пропущена грань на границе в (%d,%d)", y, z)
			}
			if rb == block.StoneID && lb == block.AirID {
				assert.Contains(t, westFaces, borderCell{y, z},
					"Пропущена встречная грань в (%d,%d)", y, z)
			}
		}
	}
}

// Уровни детализации монотонны по числу вершин
func TestLODMonotonic(t *testing.T) {
	gen := world.NewTerrainGenerator(777)
	result := BuildMesh(gen.Generate(vec.Vec2{X: 4, Z: -2}), nil, nil)

	for sub := range result.SubChunks {
		s := &result.SubChunks[sub]
		for lod := 1; lod < LODLevels; lod++ {
			assert.GreaterOrEqual(t, s.VertexCount(lod-1), s.VertexCount(lod),
				"Подчанк %d: LOD %d не может быть тяжелее LOD %d", sub, lod, lod-1)
		}
	}
}

// Вода мешится отдельными плавающими вершинами
func TestWaterMesh(t *testing.T) {
	chunk := world.NewChunk(vec.Vec2{})
	chunk.SetBlock(4, 33, 4, block.WaterID)

	result := BuildMesh(chunk, nil, nil)
	sub := &result.SubChunks[33/world.SubChunkSize]

	assert.True(t, sub.HasWater)
	require.Equal(t, 36, len(sub.Water), "Изолированная ячейка воды: 6 граней")
	assert.Equal(t, 0, len(sub.LODs[0]), "Жидкость не попадает в твердый меш")

	// Частично заполненная ячейка опускает поверхность
	chunk.SetWaterLevel(4, 33, 4, 4)
	result = BuildMesh(chunk, nil, nil)
	sub = &result.SubChunks[33/world.SubChunkSize]

	maxY := float32(0)
	for _, v := range sub.Water {
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	localY := float32(33 % world.SubChunkSize)
	assert.InDelta(t, localY+0.5, maxY, 1e-5,
		"Уровень 4 из 8 дает поверхность на половине высоты")
}

// Свет вершины — максимум четырех внешних ячеек угла
func TestVertexLightSampling(t *testing.T) {
	chunk := world.NewChunk(vec.Vec2{})
	chunk.SetBlock(8, 100, 8, block.StoneID)
	chunk.SetBlock(8, 102, 8, block.GlowstoneID)
	world.PropagateBlockLight(chunk)

	result := BuildMesh(chunk, nil, nil)
	sub := &result.SubChunks[100/world.SubChunkSize]

	// Верхняя грань камня освещена: ячейка (8,101,8) имеет свет 14
	topLight := uint8(0)
	for _, v := range sub.LODs[0] {
		if v.Normal == NormalTop && v.Light > topLight {
			topLight = v.Light
		}
	}
	assert.Equal(t, uint8(14*17), topLight,
		"Верх камня под светильником обязан быть освещен")
}

// Затенение углов: блок с соседом по диагонали дает AO ниже максимума
func TestAmbientOcclusion(t *testing.T) {
	chunk := world.NewChunk(vec.Vec2{})
	chunk.SetBlock(8, 100, 8, block.StoneID)
	// Сосед сверху-сбоку затеняет углы верхней грани
	chunk.SetBlock(9, 101, 8, block.StoneID)

	result := BuildMesh(chunk, nil, nil)
	sub := &result.SubChunks[100/world.SubChunkSize]

	minAO := uint8(255)
	for _, v := range sub.LODs[0] {
		if v.Normal == NormalTop && v.AO < minAO {
			minAO = v.AO
		}
	}
	assert.Equal(t, uint8(2*85), minAO,
		"Один твердый сосед угла дает уровень затенения 2")
}

package world

import (
	"math"

	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/noise"
	"github.com/annel0/voxel-engine/internal/vec"
)

// TerrainGenerator — детерминированный генератор ландшафта. Один и тот же
// (seed, координаты чанка) всегда дает побайтово идентичный чанк.
// Экземпляр НЕ потокобезопасен: каждый воркер пула держит свой.
type TerrainGenerator struct {
	seed   int64
	noises *noise.Set
}

// columnInfo — кешированные данные одной колонки чанка на время генерации
type columnInfo struct {
	biome  BiomeType
	height int
}

// NewTerrainGenerator создает генератор для указанного зерна мира
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		seed:   seed,
		noises: noise.NewSet(seed),
	}
}

// Seed возвращает зерно мира, с которым создан генератор
func (g *TerrainGenerator) Seed() int64 {
	return g.seed
}

// Generate строит чанк целиком: рельеф, пещеры, руды, декорации, свет.
// Результат зависит только от зерна и координат.
func (g *TerrainGenerator) Generate(coords vec.Vec2) *Chunk {
	chunk := NewChunk(coords)
	baseX, baseZ := coords.WorldOrigin()

	// Фаза 1: биом и сглаженная высота каждой колонки
	var columns [ChunkSizeX][ChunkSizeZ]columnInfo
	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			wx, wz := float64(baseX+x), float64(baseZ+z)
			biome := g.biomeAt(wx, wz)
			columns[x][z] = columnInfo{
				biome:  biome,
				height: g.blendedHeightAt(wx, wz, biome),
			}
		}
	}

	// Фаза 2: заливка колонок
	for x := 0; x < ChunkSizeX; x++ {
		for z := 0; z < ChunkSizeZ; z++ {
			g.fillColumn(chunk, x, z, columns[x][z])
		}
	}

	// Фаза 3: пещеры (после заливки, до руд)
	g.carveCaves(chunk, &columns)

	// Фаза 4: рудные жилы
	g.placeOres(chunk)

	// Фаза 5: деревья и кактусы
	g.placeFeatures(chunk, &columns)

	// Карты высот пересчитываются один раз после всех фаз:
	// инкрементальное обслуживание в SetBlock дешевле полного прохода,
	// но после пещер колонны все равно требуют пересмотра.
	chunk.RecalculateHeightmaps()
	PropagateBlockLight(chunk)

	chunk.ClearDirty()
	logging.LogDebug("Сгенерирован чанк (%d, %d): биом центра %d, высота %d",
		coords.X, coords.Z, columns[8][8].biome, columns[8][8].height)
	return chunk
}

// climateAt собирает все климатические входы для мировой позиции
func (g *TerrainGenerator) climateAt(wx, wz float64) climate {
	return climate{
		continental: g.noises.Continental.Sample(wx, wz),
		erosion:     g.noises.Erosion.Sample(wx, wz),
		temperature: g.noises.Temperature.Sample(wx, wz),
		humidity:    g.noises.Humidity.Sample(wx, wz),
		weirdness:   g.noises.Weirdness.Sample(wx, wz),
		pv:          g.noises.PeaksValleys.Sample(wx, wz),
		river:       g.noises.River.Sample(wx, wz),
	}
}

// biomeAt возвращает биом колонки в мировых координатах
func (g *TerrainGenerator) biomeAt(wx, wz float64) BiomeType {
	return selectBiome(g.climateAt(wx, wz))
}

// lerp — линейная интерполяция
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// smoothstep — кубическое сглаживание на [0,1]
func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// rawHeightAt вычисляет несглаженную высоту рельефа для мировой позиции.
// Кусочная кривая по континентальности задает базовый уровень, поверх
// накладываются пики/долины, горные хребты и мелкие детали.
func (g *TerrainGenerator) rawHeightAt(wx, wz float64) float64 {
	c := g.noises.Continental.Sample(wx, wz)
	erosion := g.noises.Erosion.Sample(wx, wz)

	// Базовая высота: кусочно-линейная кривая по континентальности
	var base float64
	switch {
	case c < -0.4:
		base = lerp(20, 45, (c+1.0)/0.6)
	case c < -0.1:
		base = lerp(45, 60, (c+0.4)/0.3)
	case c < 0.2:
		base = lerp(60, 70, (c+0.1)/0.3)
	case c < 0.5:
		base = lerp(70, 85, (c-0.2)/0.3)
	default:
		base = lerp(85, 120, (c-0.5)/0.5)
	}

	// Высокая эрозия гасит амплитуду рельефа
	erosionFactor := 0.4 + (1.0-erosion)*0.3

	height := base

	// Пики и долины только вглубь суши
	if c > 0.3 {
		pv := g.noises.PeaksValleys.Sample(wx, wz)
		height += pv * pv * 40.0 * erosionFactor
	}

	// Горные хребты: ridged-шум в кубе дает острые гребни
	if c > 0.4 && erosion < 0.2 {
		ridge := g.noises.MountainRidge.Sample(wx, wz)
		if ridge > 0 {
			height += ridge * ridge * ridge * 50.0
		}
	}

	// Мелкий рельеф
	height += g.noises.Detail.Sample(wx, wz) * 3.0 * erosionFactor

	// Русла рек прорезают сушу чуть ниже уровня моря
	river := g.noises.River.Sample(wx, wz)
	if river > 0.78 && c > -0.02 && c < 0.45 {
		depth := smoothstep((river - 0.78) / 0.22)
		riverBed := float64(SeaLevel - 2)
		if height > riverBed {
			height = lerp(height, riverBed, depth)
		}
	}

	if height < 1 {
		height = 1
	}
	if height > float64(ChunkSizeY-1) {
		height = float64(ChunkSizeY - 1)
	}
	return height
}

// blendedHeightAt сглаживает высоту по 8 соседним точкам с джиттером.
// Соседи из несовместимых категорий биомов исключаются, чтобы обрывы
// (гора рядом с океаном) не размазывались в нереалистичный склон.
func (g *TerrainGenerator) blendedHeightAt(wx, wz float64, biome BiomeType) int {
	const blendRadius = 4.0

	center := g.rawHeightAt(wx, wz)
	centerCat := biome.Category()

	heightSum := center
	weightSum := 1.0

	for i := 0; i < 8; i++ {
		angle := float64(i) * (math.Pi / 4.0)
		// Джиттер ломает регулярность восьми направлений
		jx := g.noises.Blend.Sample(wx+float64(i)*17.0, wz) * 1.5
		jz := g.noises.Blend.Sample(wx, wz+float64(i)*23.0) * 1.5
		dx := math.Cos(angle)*blendRadius + jx
		dz := math.Sin(angle)*blendRadius + jz

		nx, nz := wx+dx, wz+dz
		neighborCat := g.biomeAt(nx, nz).Category()
		if !categoriesCompatible(centerCat, neighborCat) {
			continue
		}

		dist := math.Sqrt(dx*dx + dz*dz)
		w := smoothstep(1.0 - dist/(blendRadius*2.0))
		heightSum += g.rawHeightAt(nx, nz) * w
		weightSum += w
	}

	h := int(math.Round(heightSum / weightSum))
	if h < 1 {
		h = 1
	}
	if h > ChunkSizeY-1 {
		h = ChunkSizeY - 1
	}
	return h
}

// fillColumn заполняет одну колонку чанка по высоте и биому
func (g *TerrainGenerator) fillColumn(chunk *Chunk, x, z int, col columnInfo) {
	baseX, baseZ := chunk.Coords.WorldOrigin()
	wx, wz := baseX+x, baseZ+z

	surface := surfaceBlock(col.biome, col.height)
	subsurface := subsurfaceBlock(col.biome)

	// Под водой травы не бывает
	if col.height < SeaLevel && surface == block.GrassID {
		surface = block.DirtID
	}

	for y := 0; y <= col.height; y++ {
		var id block.BlockID
		switch {
		case y == 0:
			id = block.BedrockID
		case y < BedrockHeight:
			// Рваная граница бедрока: вероятность падает с высотой
			if int(hash3(g.seed, wx, y, wz)&3) >= y {
				id = block.BedrockID
			} else {
				id = block.StoneID
			}
		case y == col.height:
			id = surface
		case y >= col.height-3:
			id = subsurface
		default:
			id = block.StoneID
		}
		chunk.SetBlock(x, y, z, id)
	}

	// Заливка моря до уровня воды
	for y := col.height + 1; y <= SeaLevel; y++ {
		chunk.SetBlock(x, y, z, block.WaterID)
		chunk.SetWaterLevel(x, y, z, WaterSource)
	}
}

// hash3 — детерминированный хеш позиции, независимый от порядка обхода.
// Смешивание по мотивам splitmix64.
func hash3(seed int64, x, y, z int) uint64 {
	h := uint64(seed) ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xBF58476D1CE4E5B9 ^ uint64(z)*0x94D049BB133111EB
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return h
}

// chunkRand — линейный конгруэнтный генератор для пофазных случайностей
// внутри чанка. Свой экземпляр на фазу, чтобы изменение одной фазы
// не сдвигало случайности других.
type chunkRand struct {
	state uint64
}

// newChunkRand создает LCG с зерном из координат чанка и соли фазы
func newChunkRand(seed int64, coords vec.Vec2, salt int64) *chunkRand {
	s := uint64(seed) ^ uint64(int64(coords.X)*341873128712+int64(coords.Z)*132897987541+salt)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &chunkRand{state: s}
}

func (r *chunkRand) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state >> 16
}

// Intn возвращает равномерное число в [0, n)
func (r *chunkRand) Intn(n int) int {
	return int(r.next() % uint64(n))
}

// Float64 возвращает равномерное число в [0, 1)
func (r *chunkRand) Float64() float64 {
	return float64(r.next()&((1<<52)-1)) / float64(1<<52)
}

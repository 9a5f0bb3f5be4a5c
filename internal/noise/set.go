package noise

// Соли именованных шумов. Пара (seed мира, соль) полностью определяет шум;
// соли фиксированы, чтобы рельеф был стабилен между сборками.
const (
	saltContinental   = 1001
	saltErosion       = 1002
	saltPeaksValleys  = 1003
	saltMountainRidge = 1004
	saltDetail        = 1005
	saltRiver         = 1006
	saltCave1         = 2001
	saltCave2         = 2002
	saltCaveEntrance  = 2003
	saltOre           = 2004
	saltAquiferZone   = 2005
	saltAquiferGate   = 2006
	saltTemperature   = 3001
	saltHumidity      = 3002
	saltWeirdness     = 3003
	saltBlend         = 3004
)

// Set содержит все именованные шумы одного мира.
// Экземпляры шума не потокобезопасны для совместного использования:
// каждый воркер генерации держит собственный Set, засеянный одинаково.
type Set struct {
	// Континентальность: низкочастотная основа рельефа, [-1,1].
	// freq 1/1024, 4 октавы, lacunarity 2.0, gain 0.5.
	Continental *Noise2D

	// Эрозия: плоскостность рельефа. freq 1/512, 3 октавы.
	Erosion *Noise2D

	// Пики и долины: ridged, формирует хребты независимо от базовой высоты.
	// freq 1/384, 3 октавы.
	PeaksValleys *Noise2D

	// Горные гребни: ridged, freq 1/256, 2 октавы.
	MountainRidge *Noise2D

	// Мелкая деталь поверхности: freq 1/32, 2 октавы.
	Detail *Noise2D

	// Реки: ridged, близость к нулю — русло. freq 1/768, 2 октавы.
	River *Noise2D

	// Пещерные 3D шумы ("сырные" пещеры): freq 1/48 и 1/64, по 2 октавы.
	Cave1 *Noise3D
	Cave2 *Noise3D

	// Спагетти-туннели используют те же Cave1/Cave2 на других частотах через
	// отдельные выборки; входы пещер — 2D шум. freq 1/96, 1 октава.
	CaveEntrance *Noise2D

	// Распределение руды: freq 1/24, 1 октава.
	Ore *Noise3D

	// Водоносные зоны: континентальный масштаб 2D (freq 1/1536) и строгий
	// 3D-гейт для изолированных луж (freq 1/40).
	AquiferZone *Noise2D
	AquiferGate *Noise3D

	// Климат: температура/влажность/странность, freq 1/896, по 2 октавы.
	Temperature *Noise2D
	Humidity    *Noise2D
	Weirdness   *Noise2D

	// Джиттер смешивания биомов: не PRNG, а шум — результат
	// детерминирован по позиции. freq 1/16, 1 октава.
	Blend *Noise2D
}

// NewSet создает полный набор шумов для указанного seed мира
func NewSet(seed int64) *Set {
	return &Set{
		Continental:   newPerlin2(seed, saltContinental, 1.0/1024.0, 4, 2.0, 0.5),
		Erosion:       newPerlin2(seed, saltErosion, 1.0/512.0, 3, 2.0, 0.5),
		PeaksValleys:  newSimplex2(seed, saltPeaksValleys, 1.0/384.0, 3, 2.0, 0.5, true),
		MountainRidge: newSimplex2(seed, saltMountainRidge, 1.0/256.0, 2, 2.0, 0.5, true),
		Detail:        newPerlin2(seed, saltDetail, 1.0/32.0, 2, 2.0, 0.5),
		River:         newSimplex2(seed, saltRiver, 1.0/768.0, 2, 2.0, 0.5, true),
		Cave1:         newSimplex3(seed, saltCave1, 1.0/48.0, 2, 2.0, 0.5),
		Cave2:         newSimplex3(seed, saltCave2, 1.0/64.0, 2, 2.0, 0.5),
		CaveEntrance:  newSimplex2(seed, saltCaveEntrance, 1.0/96.0, 1, 2.0, 0.5, false),
		Ore:           newSimplex3(seed, saltOre, 1.0/24.0, 1, 2.0, 0.5),
		AquiferZone:   newPerlin2(seed, saltAquiferZone, 1.0/1536.0, 2, 2.0, 0.5),
		AquiferGate:   newSimplex3(seed, saltAquiferGate, 1.0/40.0, 1, 2.0, 0.5),
		Temperature:   newPerlin2(seed, saltTemperature, 1.0/896.0, 2, 2.0, 0.5),
		Humidity:      newPerlin2(seed, saltHumidity, 1.0/896.0, 2, 2.0, 0.5),
		Weirdness:     newPerlin2(seed, saltWeirdness, 1.0/896.0, 2, 2.0, 0.5),
		Blend:         newSimplex2(seed, saltBlend, 1.0/16.0, 1, 2.0, 0.5, false),
	}
}

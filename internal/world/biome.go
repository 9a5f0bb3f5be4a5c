package world

import (
	"github.com/annel0/voxel-engine/internal/block"
)

// BiomeType представляет тип биома
type BiomeType int

const (
	BiomeDeepOcean BiomeType = iota
	BiomeOcean
	BiomeBeach
	BiomeRiver
	BiomePlains
	BiomeForest
	BiomeBirchForest
	BiomeDarkForest
	BiomeSwamp
	BiomeDesert
	BiomeSavanna
	BiomeTaiga
	BiomeSnowyPlains
	BiomeMountains
	BiomeSnowyMountains
)

// BiomeCategory — крупная категория биома для смешивания высот.
// Высоты смешиваются только между одинаковыми или смежными категориями,
// иначе на границах появляются швы, выровненные по сетке.
type BiomeCategory int

const (
	CategoryWater BiomeCategory = iota
	CategoryCoast
	CategoryCold
	CategoryTemperate
	CategoryHot
	CategoryMountain
)

// climate — набор входов таблицы выбора биома для одной колонки
type climate struct {
	continental float64
	erosion     float64
	temperature float64
	humidity    float64
	weirdness   float64
	pv          float64
	river       float64
}

// selectBiome реализует таблицу решений выбора биома.
// Пороги фиксированы: от них зависит стабильность рельефа между сборками.
func selectBiome(cl climate) BiomeType {
	// Водные биомы по континентальности
	if cl.continental < -0.4 {
		return BiomeDeepOcean
	}
	if cl.continental < -0.12 {
		return BiomeOcean
	}
	if cl.continental < -0.02 {
		return BiomeBeach
	}

	// Русла рек: ridged-шум у гребня, вне гор
	if cl.river > 0.78 && cl.continental < 0.45 {
		return BiomeRiver
	}

	// Горы: высокая континентальность при низкой эрозии, либо сильный PV
	if (cl.continental > 0.4 && cl.erosion < 0.2) || (cl.pv > 0.65 && cl.continental > 0.3) {
		if cl.temperature < -0.25 {
			return BiomeSnowyMountains
		}
		return BiomeMountains
	}

	// Холодные биомы
	if cl.temperature < -0.45 {
		if cl.humidity > 0.05 {
			return BiomeTaiga
		}
		return BiomeSnowyPlains
	}

	// Жаркие биомы
	if cl.temperature > 0.45 {
		if cl.humidity < -0.05 {
			return BiomeDesert
		}
		return BiomeSavanna
	}

	// Умеренные биомы по влажности и странности
	if cl.humidity > 0.4 && cl.temperature > 0.1 {
		return BiomeSwamp
	}
	if cl.humidity > 0.22 {
		if cl.weirdness > 0.25 {
			return BiomeDarkForest
		}
		if cl.weirdness < -0.25 {
			return BiomeBirchForest
		}
		return BiomeForest
	}

	return BiomePlains
}

// Category возвращает категорию биома
func (b BiomeType) Category() BiomeCategory {
	switch b {
	case BiomeDeepOcean, BiomeOcean, BiomeRiver:
		return CategoryWater
	case BiomeBeach:
		return CategoryCoast
	case BiomeTaiga, BiomeSnowyPlains:
		return CategoryCold
	case BiomeDesert, BiomeSavanna:
		return CategoryHot
	case BiomeMountains, BiomeSnowyMountains:
		return CategoryMountain
	default:
		return CategoryTemperate
	}
}

// categoryAdjacency перечисляет пары категорий, между которыми высоты
// смешиваются. Сама с собой категория всегда совместима.
var categoryAdjacency = [...][2]BiomeCategory{
	{CategoryWater, CategoryCoast},
	{CategoryCoast, CategoryTemperate},
	{CategoryCoast, CategoryHot},
	{CategoryCoast, CategoryCold},
	{CategoryTemperate, CategoryCold},
	{CategoryTemperate, CategoryHot},
	{CategoryTemperate, CategoryMountain},
	{CategoryCold, CategoryMountain},
}

// categoriesCompatible проверяет, можно ли смешивать высоты двух биомов
func categoriesCompatible(a, b BiomeCategory) bool {
	if a == b {
		return true
	}
	for _, pair := range categoryAdjacency {
		if (pair[0] == a && pair[1] == b) || (pair[0] == b && pair[1] == a) {
			return true
		}
	}
	return false
}

// surfaceBlock возвращает поверхностный блок биома с учетом высоты
func surfaceBlock(biome BiomeType, y int) block.BlockID {
	// Выше ~100 поверхность каменная независимо от биома
	if y > 100 {
		if biome == BiomeSnowyMountains || y > 130 {
			return block.SnowID
		}
		return block.StoneID
	}
	switch biome {
	case BiomeDeepOcean, BiomeOcean:
		return block.GravelID
	case BiomeBeach, BiomeDesert:
		return block.SandID
	case BiomeRiver:
		return block.GravelID
	case BiomeSnowyPlains, BiomeSnowyMountains:
		return block.SnowID
	case BiomeMountains:
		return block.StoneID
	default:
		return block.GrassID
	}
}

// subsurfaceBlock возвращает подповерхностный блок биома (4 блока под поверхностью)
func subsurfaceBlock(biome BiomeType) block.BlockID {
	switch biome {
	case BiomeDeepOcean, BiomeOcean, BiomeRiver:
		return block.GravelID
	case BiomeBeach:
		return block.SandID
	case BiomeDesert:
		return block.SandstoneID
	case BiomeMountains, BiomeSnowyMountains:
		return block.StoneID
	default:
		return block.DirtID
	}
}

package block

// Индексы граней: 0=+X, 1=-X, 2=+Y (верх), 3=-Y (низ), 4=+Z, 5=-Z.
// Порядок совпадает с индексами нормалей в мешере.
const (
	FaceEast = iota
	FaceWest
	FaceTop
	FaceBottom
	FaceNorth
	FaceSouth
	FaceCount
)

// Слоты текстурного атласа. Сам атлас — внешний коллаборатор,
// ядро оперирует только непрозрачными индексами.
const (
	slotMissing uint8 = iota
	slotStone
	slotDirt
	slotGrassTop
	slotGrassSide
	slotSand
	slotGravel
	slotBedrock
	slotWater
	slotLava
	slotSnow
	slotSandstone
	slotOakLogSide
	slotOakLogEnd
	slotDarkLogSide
	slotDarkLogEnd
	slotBirchLogSide
	slotBirchLogEnd
	slotSpruceLogSide
	slotSpruceLogEnd
	slotAcaciaLogSide
	slotAcaciaLogEnd
	slotOakLeaves
	slotDarkLeaves
	slotBirchLeaves
	slotSpruceLeaves
	slotAcaciaLeaves
	slotCactusSide
	slotCactusEnd
	slotGlowstone
	slotCoalOre
	slotIronOre
	slotGoldOre
	slotDiamondOre
)

// Таблица слотов текстур по граням. Отсутствующие ID получают slotMissing.
var faceSlots = map[BlockID][FaceCount]uint8{
	StoneID:       uniform(slotStone),
	DirtID:        uniform(slotDirt),
	GrassID:       {slotGrassSide, slotGrassSide, slotGrassTop, slotDirt, slotGrassSide, slotGrassSide},
	SandID:        uniform(slotSand),
	GravelID:      uniform(slotGravel),
	BedrockID:     uniform(slotBedrock),
	WaterID:       uniform(slotWater),
	LavaID:        uniform(slotLava),
	SnowID:        uniform(slotSnow),
	SandstoneID:   uniform(slotSandstone),
	OakLogID:      logSlots(slotOakLogSide, slotOakLogEnd),
	DarkOakLogID:  logSlots(slotDarkLogSide, slotDarkLogEnd),
	BirchLogID:    logSlots(slotBirchLogSide, slotBirchLogEnd),
	SpruceLogID:   logSlots(slotSpruceLogSide, slotSpruceLogEnd),
	AcaciaLogID:   logSlots(slotAcaciaLogSide, slotAcaciaLogEnd),
	OakLeavesID:   uniform(slotOakLeaves),
	DarkLeavesID:  uniform(slotDarkLeaves),
	BirchLeavesID: uniform(slotBirchLeaves),
	SpruceLeafID:  uniform(slotSpruceLeaves),
	AcaciaLeafID:  uniform(slotAcaciaLeaves),
	CactusID:      logSlots(slotCactusSide, slotCactusEnd),
	GlowstoneID:   uniform(slotGlowstone),
	CoalOreID:     uniform(slotCoalOre),
	IronOreID:     uniform(slotIronOre),
	GoldOreID:     uniform(slotGoldOre),
	DiamondOreID:  uniform(slotDiamondOre),
}

// FaceSlots возвращает слоты текстур для всех шести граней блока.
// Функция тотальна: неизвестные ID получают "битый" слот.
func FaceSlots(id BlockID) [FaceCount]uint8 {
	if slots, exists := faceSlots[id]; exists {
		return slots
	}
	return uniform(slotMissing)
}

// FaceSlot возвращает слот текстуры для одной грани
func FaceSlot(id BlockID, face int) uint8 {
	if face < 0 || face >= FaceCount {
		return slotMissing
	}
	return FaceSlots(id)[face]
}

// uniform возвращает одинаковый слот на все шесть граней
func uniform(slot uint8) [FaceCount]uint8 {
	return [FaceCount]uint8{slot, slot, slot, slot, slot, slot}
}

// logSlots возвращает слоты для блоков типа "бревно": торцы сверху и снизу
func logSlots(side, end uint8) [FaceCount]uint8 {
	return [FaceCount]uint8{side, side, end, end, side, side}
}

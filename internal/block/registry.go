package block

// Регистр свойств блоков. Заполняется в init() — до старта любых воркеров.
var registry = make(map[BlockID]Properties)

// Свойства для неизвестных ID: непрозрачный "битый" материал
var missingProps = Properties{
	Name:     "missing",
	Solid:    true,
	Hardness: 1.0,
}

// Register добавляет свойства блока в регистр
func Register(id BlockID, props Properties) {
	registry[id] = props
}

// Props возвращает свойства для указанного ID.
// Функция тотальна: неизвестные ID отображаются в MissingID.
func Props(id BlockID) Properties {
	if props, exists := registry[id]; exists {
		return props
	}
	return missingProps
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// IsSolid возвращает true, если блок твердый
func IsSolid(id BlockID) bool {
	return Props(id).Solid
}

// IsTransparent возвращает true, если блок не закрывает соседние грани
func IsTransparent(id BlockID) bool {
	return Props(id).Transparent
}

// IsLiquid возвращает true для жидкостей
func IsLiquid(id BlockID) bool {
	return Props(id).Liquid
}

// Emission возвращает уровень излучаемого света блока (0..15)
func Emission(id BlockID) uint8 {
	return Props(id).Emission
}

func init() {
	Register(AirID, Properties{Name: "air", Transparent: true})
	Register(StoneID, Properties{Name: "stone", Solid: true, Hardness: 1.5})
	Register(DirtID, Properties{Name: "dirt", Solid: true, Hardness: 0.5})
	Register(GrassID, Properties{Name: "grass", Solid: true, Hardness: 0.6})
	Register(SandID, Properties{Name: "sand", Solid: true, Hardness: 0.5})
	Register(GravelID, Properties{Name: "gravel", Solid: true, Hardness: 0.6})
	Register(BedrockID, Properties{Name: "bedrock", Solid: true, Hardness: -1}) // неразрушаемый
	Register(WaterID, Properties{Name: "water", Transparent: true, Liquid: true, Hardness: 100})
	Register(LavaID, Properties{Name: "lava", Transparent: true, Liquid: true, Emission: 15, Hardness: 100})
	Register(SnowID, Properties{Name: "snow_block", Solid: true, Hardness: 0.2})
	Register(SandstoneID, Properties{Name: "sandstone", Solid: true, Hardness: 0.8})

	Register(OakLogID, Properties{Name: "oak_log", Solid: true, Hardness: 2.0})
	Register(DarkOakLogID, Properties{Name: "dark_oak_log", Solid: true, Hardness: 2.0})
	Register(BirchLogID, Properties{Name: "birch_log", Solid: true, Hardness: 2.0})
	Register(SpruceLogID, Properties{Name: "spruce_log", Solid: true, Hardness: 2.0})
	Register(AcaciaLogID, Properties{Name: "acacia_log", Solid: true, Hardness: 2.0})
	Register(OakLeavesID, Properties{Name: "oak_leaves", Solid: true, Transparent: true, Hardness: 0.2})
	Register(DarkLeavesID, Properties{Name: "dark_oak_leaves", Solid: true, Transparent: true, Hardness: 0.2})
	Register(BirchLeavesID, Properties{Name: "birch_leaves", Solid: true, Transparent: true, Hardness: 0.2})
	Register(SpruceLeafID, Properties{Name: "spruce_leaves", Solid: true, Transparent: true, Hardness: 0.2})
	Register(AcaciaLeafID, Properties{Name: "acacia_leaves", Solid: true, Transparent: true, Hardness: 0.2})
	Register(CactusID, Properties{Name: "cactus", Solid: true, Transparent: true, Hardness: 0.4})

	Register(GlowstoneID, Properties{Name: "glowstone", Solid: true, Emission: 15, Hardness: 0.3})

	Register(CoalOreID, Properties{Name: "coal_ore", Solid: true, Hardness: 3.0})
	Register(IronOreID, Properties{Name: "iron_ore", Solid: true, Hardness: 3.0})
	Register(GoldOreID, Properties{Name: "gold_ore", Solid: true, Hardness: 3.0})
	Register(DiamondOreID, Properties{Name: "diamond_ore", Solid: true, Hardness: 3.0})
}

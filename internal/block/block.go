package block

// BlockID представляет идентификатор вида блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirID     BlockID = iota // 0
	StoneID                  // 1
	DirtID                   // 2
	GrassID                  // 3
	SandID                   // 4
	GravelID                 // 5
	BedrockID                // 6
	// Жидкости
	WaterID // 7
	LavaID  // 8
	// Поверхностные блоки биомов
	SnowID      // 9
	SandstoneID // 10

	// Древесина и листва (начиная с 100, оставляем промежутки между категориями)
	OakLogID      BlockID = 100
	DarkOakLogID  BlockID = 101
	BirchLogID    BlockID = 102
	SpruceLogID   BlockID = 103
	AcaciaLogID   BlockID = 104
	OakLeavesID   BlockID = 110
	DarkLeavesID  BlockID = 111
	BirchLeavesID BlockID = 112
	SpruceLeafID  BlockID = 113
	AcaciaLeafID  BlockID = 114
	CactusID      BlockID = 120

	// Светящиеся блоки (начиная с 200)
	GlowstoneID BlockID = 200

	// Руды (начиная с 300)
	CoalOreID    BlockID = 300
	IronOreID    BlockID = 301
	GoldOreID    BlockID = 302
	DiamondOreID BlockID = 303

	// Служебный блок для неизвестных ID: поврежденные данные видны, но не фатальны
	MissingID BlockID = 65535
)

// Properties описывает неизменяемые свойства вида блока
type Properties struct {
	Name        string  // Имя для логов и инструментов
	Solid       bool    // Участвует в коллизиях и закрывает соседние грани
	Transparent bool    // Не считается окклюдером при отсечении граней
	Liquid      bool    // Жидкость (меши строятся отдельным проходом)
	Emission    uint8   // Уровень излучаемого света 0..15
	Hardness    float64 // Прочность (время разрушения)
}

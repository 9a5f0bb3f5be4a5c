package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Каталог тотален: неизвестный ID дает материал-заглушку, а не панику
func TestPropsTotal(t *testing.T) {
	props := Props(BlockID(9999))
	assert.Equal(t, "missing", props.Name, "Неизвестный ID обязан давать заглушку")
	assert.True(t, props.Solid, "Заглушка видима — порча данных заметна")

	assert.False(t, IsValidBlockID(BlockID(9999)))
	assert.True(t, IsValidBlockID(StoneID))
	assert.True(t, IsValidBlockID(AirID))
}

func TestBasicProperties(t *testing.T) {
	assert.False(t, IsSolid(AirID), "Воздух не твердый")
	assert.True(t, IsSolid(StoneID))
	assert.False(t, IsSolid(WaterID), "Жидкости не твердые")

	assert.True(t, IsLiquid(WaterID))
	assert.True(t, IsLiquid(LavaID))
	assert.False(t, IsLiquid(StoneID))

	assert.True(t, IsTransparent(AirID))
	assert.True(t, IsTransparent(OakLeavesID), "Листва пропускает свет")
	assert.False(t, IsTransparent(StoneID))
}

func TestEmission(t *testing.T) {
	assert.Equal(t, uint8(15), Emission(GlowstoneID))
	assert.Equal(t, uint8(15), Emission(LavaID))
	assert.Equal(t, uint8(0), Emission(StoneID))
	assert.Equal(t, uint8(0), Emission(BlockID(40000)), "Заглушка не светится")
}

// Текстурные слоты тотальны и покрывают все 6 граней
func TestFaceSlots(t *testing.T) {
	slots := FaceSlots(GrassID)
	assert.NotEqual(t, slots[FaceTop], slots[FaceBottom],
		"У травы верх и низ текстурируются по-разному")
	assert.Equal(t, slots[FaceNorth], slots[FaceSouth],
		"Боковые грани травы одинаковы")

	// Неизвестный блок получает слот заглушки на всех гранях
	missing := FaceSlots(BlockID(5555))
	for face := 0; face < FaceCount; face++ {
		assert.Equal(t, missing[0], missing[face])
	}

	assert.Equal(t, FaceSlots(StoneID)[FaceTop], FaceSlot(StoneID, FaceTop))
}

func TestBedrockUnbreakable(t *testing.T) {
	assert.Less(t, Props(BedrockID).Hardness, 0.0,
		"Отрицательная прочность — блок неразрушим")
}

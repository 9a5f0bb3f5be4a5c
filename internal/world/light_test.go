package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/vec"
)

// Одиночный светящийся блок в пустом чанке: градиент падает на 1 за шаг
func TestLightGlowstoneGradient(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})
	chunk.SetBlock(8, 60, 8, block.GlowstoneID)

	PropagateBlockLight(chunk)

	assert.Equal(t, uint8(15), chunk.LightLevel(8, 60, 8), "Источник держит полную яркость")
	assert.Equal(t, uint8(14), chunk.LightLevel(9, 60, 8), "Сосед на 1 тусклее")
	assert.Equal(t, uint8(8), chunk.LightLevel(15, 60, 8), "7 шагов от источника")
	assert.Equal(t, uint8(7), chunk.LightLevel(0, 60, 8), "8 шагов от источника")
	assert.Equal(t, uint8(14), chunk.LightLevel(8, 61, 8), "Свет идет и по вертикали")
}

// Непрозрачный блок гасит свет, прозрачный пропускает
func TestLightOcclusion(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})
	chunk.SetBlock(8, 60, 8, block.GlowstoneID)
	// Каменная стена поперек оси X
	for y := 50; y < 70; y++ {
		for z := 0; z < ChunkSizeZ; z++ {
			chunk.SetBlock(10, y, z, block.StoneID)
		}
	}

	PropagateBlockLight(chunk)

	assert.Equal(t, uint8(14), chunk.LightLevel(9, 60, 8), "До стены свет доходит")
	assert.Equal(t, uint8(0), chunk.LightLevel(10, 60, 8), "Внутри камня света нет")
	// За стеной только обходной свет, заметно слабее прямого
	assert.Less(t, chunk.LightLevel(11, 60, 8), uint8(12),
		"Прямой луч сквозь камень невозможен")
}

// Прозрачные блоки (листва, вода) пропускают свет
func TestLightThroughTransparent(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})
	chunk.SetBlock(8, 60, 8, block.GlowstoneID)
	chunk.SetBlock(9, 60, 8, block.OakLeavesID)

	PropagateBlockLight(chunk)

	assert.Equal(t, uint8(14), chunk.LightLevel(9, 60, 8), "Листва освещена")
	assert.Equal(t, uint8(13), chunk.LightLevel(10, 60, 8), "Свет прошел сквозь листву")
}

// Пересечение двух источников сходится к максимуму
func TestLightTwoSources(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})
	chunk.SetBlock(4, 60, 8, block.GlowstoneID)
	chunk.SetBlock(10, 60, 8, block.GlowstoneID)

	PropagateBlockLight(chunk)

	// Точка между источниками: ближний дает больше
	assert.Equal(t, uint8(12), chunk.LightLevel(7, 60, 8),
		"Середина освещается ближайшим источником")
	assert.Equal(t, uint8(15), chunk.LightLevel(10, 60, 8))
}

// Повторный прогон после удаления источника гасит свет полностью
func TestLightRecomputeAfterRemoval(t *testing.T) {
	chunk := NewChunk(vec.Vec2{})
	chunk.SetBlock(8, 60, 8, block.GlowstoneID)
	PropagateBlockLight(chunk)
	assert.Equal(t, uint8(14), chunk.LightLevel(9, 60, 8))

	chunk.SetBlock(8, 60, 8, block.AirID)
	PropagateBlockLight(chunk)
	assert.Equal(t, uint8(0), chunk.LightLevel(9, 60, 8),
		"После удаления источника свет обязан погаснуть")
	assert.Equal(t, uint8(0), chunk.LightLevel(8, 60, 8))
}

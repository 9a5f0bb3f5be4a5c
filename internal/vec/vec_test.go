package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, FloorDiv(0, 16))
	assert.Equal(t, 0, FloorDiv(15, 16))
	assert.Equal(t, 1, FloorDiv(16, 16))
	assert.Equal(t, -1, FloorDiv(-1, 16), "Отрицательные округляются вниз")
	assert.Equal(t, -1, FloorDiv(-16, 16))
	assert.Equal(t, -2, FloorDiv(-17, 16))
}

func TestMod(t *testing.T) {
	assert.Equal(t, 0, Mod(0, 16))
	assert.Equal(t, 15, Mod(15, 16))
	assert.Equal(t, 0, Mod(16, 16))
	assert.Equal(t, 15, Mod(-1, 16), "Остаток всегда неотрицательный")
	assert.Equal(t, 0, Mod(-16, 16))
}

func TestVec3ToChunkCoords(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec3{X: 5, Y: 64, Z: 9}.ToChunkCoords())
	assert.Equal(t, Vec2{X: -1, Z: -1}, Vec3{X: -1, Y: 0, Z: -1}.ToChunkCoords())
	assert.Equal(t, Vec2{X: 2, Z: -3}, Vec3{X: 33, Y: 200, Z: -48}.ToChunkCoords())
}

func TestVec3FloatFloor(t *testing.T) {
	v := Vec3Float{X: -0.5, Y: 80.9, Z: 15.99}.ToVec3()
	assert.Equal(t, Vec3{X: -1, Y: 80, Z: 15}, v, "Плавающие координаты режутся вниз")
}

func TestVec2WorldOrigin(t *testing.T) {
	x, z := Vec2{X: 3, Z: -2}.WorldOrigin()
	assert.Equal(t, 48, x)
	assert.Equal(t, -32, z)
}

func TestVec2Distance(t *testing.T) {
	a := Vec2{X: 0, Z: 0}
	b := Vec2{X: 3, Z: 4}
	assert.InDelta(t, 5.0, a.DistanceTo(b), 1e-9)
	assert.Equal(t, 25, a.DistanceSq(b))
	assert.Equal(t, Vec2{X: 3, Z: 4}, a.Add(b))
}

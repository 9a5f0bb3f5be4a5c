package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// Камера в начале координат смотрит вдоль -Z
func testFrustum() Frustum {
	proj := mgl32.Perspective(mgl32.DegToRad(70), 16.0/9.0, 0.1, 500)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{0, 1, 0},
	)
	return FrustumFromMatrix(proj.Mul4(view))
}

func TestFrustumCullsBehindCamera(t *testing.T) {
	f := testFrustum()

	assert.True(t, f.IntersectsAABB(
		mgl32.Vec3{-1, -1, -11}, mgl32.Vec3{1, 1, -9}),
		"Бокс перед камерой виден")
	assert.False(t, f.IntersectsAABB(
		mgl32.Vec3{-1, -1, 9}, mgl32.Vec3{1, 1, 11}),
		"Бокс за спиной отсечен")
	assert.False(t, f.IntersectsAABB(
		mgl32.Vec3{-1, -1, -1000}, mgl32.Vec3{1, 1, -900}),
		"Бокс за дальней плоскостью отсечен")
}

func TestFrustumSideCulling(t *testing.T) {
	f := testFrustum()

	// Далеко слева от конуса на небольшой глубине
	assert.False(t, f.IntersectsAABB(
		mgl32.Vec3{-500, -1, -11}, mgl32.Vec3{-498, 1, -9}),
		"Бокс далеко сбоку отсечен")
	// Пересекающий левую плоскость — виден
	assert.True(t, f.IntersectsAABB(
		mgl32.Vec3{-20, -1, -11}, mgl32.Vec3{0, 1, -9}),
		"Бокс, задевающий конус, виден")
}

func TestFrustumContainsCameraCell(t *testing.T) {
	f := testFrustum()

	// Бокс, охватывающий камеру целиком, пересекает любой объем
	assert.True(t, f.IntersectsAABB(
		mgl32.Vec3{-8, -8, -8}, mgl32.Vec3{8, 8, 8}))
}

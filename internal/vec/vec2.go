package vec

import "math"

// Vec2 представляет целочисленные 2D координаты в горизонтальной плоскости X/Z.
// Используется в первую очередь как координата чанка.
type Vec2 struct {
	X, Z int
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Z: v.Z + other.Z}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// DistanceSq возвращает квадрат расстояния (без извлечения корня)
func (v Vec2) DistanceSq(other Vec2) int {
	dx := v.X - other.X
	dz := v.Z - other.Z
	return dx*dx + dz*dz
}

// WorldOrigin возвращает мировые блочные координаты начала чанка
func (v Vec2) WorldOrigin() (int, int) {
	return v.X << 4, v.Z << 4
}

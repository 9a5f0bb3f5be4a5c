package vec

import "math"

// Vec3 представляет трехмерный вектор с целочисленными координатами (позиция блока)
type Vec3 struct {
	X int
	Y int
	Z int
}

// Vec3Float представляет трехмерный вектор с плавающими координатами (позиция наблюдателя)
type Vec3Float struct {
	X float64
	Y float64
	Z float64
}

// ToChunkCoords преобразует мировые блочные координаты в координаты чанка
func (v Vec3) ToChunkCoords() Vec2 {
	return Vec2{X: FloorDiv(v.X, 16), Z: FloorDiv(v.Z, 16)}
}

// LocalInChunk возвращает локальные координаты блока внутри чанка
func (v Vec3) LocalInChunk() Vec3 {
	return Vec3{X: Mod(v.X, 16), Y: v.Y, Z: Mod(v.Z, 16)}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// DistanceTo возвращает расстояние до другого вектора
func (v Vec3) DistanceTo(other Vec3) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ToVec3 преобразует в целочисленные координаты (с округлением вниз)
func (v Vec3Float) ToVec3() Vec3 {
	return Vec3{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y)),
		Z: int(math.Floor(v.Z)),
	}
}

// ToChunkCoords возвращает координаты чанка, содержащего точку
func (v Vec3Float) ToChunkCoords() Vec2 {
	return v.ToVec3().ToChunkCoords()
}

// FloorDiv выполняет целочисленное деление с округлением вниз для отрицательных чисел
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Mod возвращает остаток от деления a/b, всегда неотрицательный
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

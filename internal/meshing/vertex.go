// Package meshing превращает чанки в вершинные потоки для GPU:
// жадная сетка с упакованными 16-байтовыми вершинами, LOD-уровни
// и отдельные водные меши на плавающих вершинах.
package meshing

// Индексы нормалей граней, порядок согласован с атласом текстур:
// 0=+X, 1=−X, 2=+Y, 3=−Y, 4=+Z, 5=−Z
const (
	NormalEast = iota
	NormalWest
	NormalTop
	NormalBottom
	NormalNorth
	NormalSouth
	NormalCount
)

// FixedOne — единица в формате 8.8 с фиксированной точкой
const FixedOne = 256

// PackedVertex — упакованная вершина, ровно 16 байт.
// Рендер привязывается к раскладке побайтово: атрибут 0 — RGB16_SINT
// позиция (масштаб 1/256), атрибут 1 — RG16_UINT uv (8.8, тайловое
// пространство, fract() в шейдере), атрибут 2 — RGBA8_UINT
// (normal, ao, light, slot).
type PackedVertex struct {
	X, Y, Z int16  // позиция 8.8 относительно начала подчанка
	U, V    uint16 // uv 8.8, может превышать 1.0 внутри тайла
	Normal  uint8  // индекс нормали 0..5
	AO      uint8  // ambient occlusion 0..255
	Light   uint8  // блочный свет, 0..15 растянутые в 0..255
	Slot    uint8  // слот текстуры в атласе
	_       [2]byte
}

// WaterVertex — вершина воды и лавы. Вода не пакуется: поверхностным
// эффектам нужны гладкие нормали и дробная высота уровня.
type WaterVertex struct {
	X, Y, Z    float32
	NX, NY, NZ float32
	U, V       float32
}

// packPosition переводит целую локальную координату в 8.8
func packPosition(v int) int16 {
	return int16(v * FixedOne)
}

// packUV переводит тайловую координату в беззнаковый 8.8
func packUV(v int) uint16 {
	return uint16(v * FixedOne)
}

// scaleLight растягивает уровень света 0..15 в байтовый диапазон
func scaleLight(level uint8) uint8 {
	return level * 17
}

// scaleAO переводит уровень затенения 0..3 в байтовый диапазон
func scaleAO(level int) uint8 {
	return uint8(level * 85)
}

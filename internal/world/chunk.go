package world

import (
	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/vec"
)

// Размеры чанка в блоках
const (
	ChunkSizeX = 16
	ChunkSizeY = 256
	ChunkSizeZ = 16

	// Сабчанк — вертикальный срез 16x16x16, единица выдачи мешей
	SubChunkSize  = 16
	SubChunkCount = ChunkSizeY / SubChunkSize

	// Уровень моря и толщина скального основания
	SeaLevel      = 62
	BedrockHeight = 4

	// Уровни воды: 0 — нет, 1..7 — течение, 8 — источник
	WaterSource uint8 = 8

	// Максимальный уровень блочного света
	MaxLightLevel uint8 = 15
)

// Chunk представляет столб мира размером 16x256x16 блоков.
// Это единица генерации, хранения и стриминга.
type Chunk struct {
	Coords vec.Vec2 // Координаты чанка в мире (горизонтальные)

	// Плоские массивы, индекс x + z*16 + y*256
	blocks      []block.BlockID
	waterLevels []uint8
	lightLevels []uint8

	// Карта высот: min/max занятый Y по колонкам.
	// Сентинелы для пустой колонки: minY=255, maxY=0.
	minY [ChunkSizeX * ChunkSizeZ]uint8
	maxY [ChunkSizeX * ChunkSizeZ]uint8

	// Грубые границы всего чанка (для отсечения)
	chunkMinY int
	chunkMaxY int

	dirty                  bool
	hasWater               bool
	hasPendingWaterUpdates bool
}

// NewChunk создает пустой чанк с указанными координатами
func NewChunk(coords vec.Vec2) *Chunk {
	c := &Chunk{
		Coords:      coords,
		blocks:      make([]block.BlockID, ChunkSizeX*ChunkSizeY*ChunkSizeZ),
		waterLevels: make([]uint8, ChunkSizeX*ChunkSizeY*ChunkSizeZ),
		lightLevels: make([]uint8, ChunkSizeX*ChunkSizeY*ChunkSizeZ),
		chunkMinY:   ChunkSizeY - 1,
		chunkMaxY:   0,
	}
	for i := range c.minY {
		c.minY[i] = ChunkSizeY - 1
		c.maxY[i] = 0
	}
	return c
}

// index возвращает индекс блока в плоском массиве
func index(x, y, z int) int {
	return x + z*ChunkSizeX + y*ChunkSizeX*ChunkSizeZ
}

// inBounds проверяет, что локальные координаты лежат внутри чанка
func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// Block возвращает вид блока по локальным координатам.
// Выход за границы не ошибка: возвращается воздух.
func (c *Chunk) Block(x, y, z int) block.BlockID {
	if !inBounds(x, y, z) {
		return block.AirID
	}
	return c.blocks[index(x, y, z)]
}

// SetBlock устанавливает блок и поддерживает инварианты чанка:
// карту высот, флаг воды и согласованность waterLevel <-> WATER.
func (c *Chunk) SetBlock(x, y, z int, id block.BlockID) {
	if !inBounds(x, y, z) {
		return
	}
	i := index(x, y, z)
	old := c.blocks[i]
	if old == id {
		return
	}
	c.blocks[i] = id
	c.dirty = true

	// Согласованность уровня воды с видом блока
	if id == block.WaterID {
		if c.waterLevels[i] == 0 {
			c.waterLevels[i] = WaterSource
		}
		c.hasWater = true
		c.hasPendingWaterUpdates = true
	} else if c.waterLevels[i] != 0 {
		c.waterLevels[i] = 0
	}

	col := x + z*ChunkSizeX
	if id != block.AirID {
		// Расширяем экстремумы колонки и чанка
		if uint8(y) < c.minY[col] {
			c.minY[col] = uint8(y)
		}
		if uint8(y) > c.maxY[col] {
			c.maxY[col] = uint8(y)
		}
		if y < c.chunkMinY {
			c.chunkMinY = y
		}
		if y > c.chunkMaxY {
			c.chunkMaxY = y
		}
	} else if old != block.AirID {
		// Удаление блока: пересканируем колонку только если задет экстремум
		if uint8(y) == c.minY[col] || uint8(y) == c.maxY[col] {
			c.RecalculateColumnHeight(x, z)
		}
	}
}

// WaterLevel возвращает уровень воды по локальным координатам
func (c *Chunk) WaterLevel(x, y, z int) uint8 {
	if !inBounds(x, y, z) {
		return 0
	}
	return c.waterLevels[index(x, y, z)]
}

// SetWaterLevel устанавливает уровень воды (0..8)
func (c *Chunk) SetWaterLevel(x, y, z int, level uint8) {
	if !inBounds(x, y, z) {
		return
	}
	if level > WaterSource {
		level = WaterSource
	}
	c.waterLevels[index(x, y, z)] = level
	if level > 0 {
		c.hasWater = true
		c.hasPendingWaterUpdates = true
	}
}

// LightLevel возвращает уровень блочного света (0..15)
func (c *Chunk) LightLevel(x, y, z int) uint8 {
	if !inBounds(x, y, z) {
		return 0
	}
	return c.lightLevels[index(x, y, z)]
}

// SetLightLevel устанавливает уровень блочного света с насыщением
func (c *Chunk) SetLightLevel(x, y, z int, level uint8) {
	if !inBounds(x, y, z) {
		return
	}
	if level > MaxLightLevel {
		level = MaxLightLevel
	}
	c.lightLevels[index(x, y, z)] = level
}

// RecalculateColumnHeight пересчитывает min/max занятый Y одной колонки, O(256)
func (c *Chunk) RecalculateColumnHeight(x, z int) {
	if x < 0 || x >= ChunkSizeX || z < 0 || z >= ChunkSizeZ {
		return
	}
	col := x + z*ChunkSizeX
	minY := 0
	maxY := 0
	found := false
	for y := 0; y < ChunkSizeY; y++ {
		if c.blocks[index(x, y, z)] != block.AirID {
			if !found {
				minY = y
				found = true
			}
			maxY = y
		}
	}
	if !found {
		// Сентинелы пустой колонки
		c.minY[col] = ChunkSizeY - 1
		c.maxY[col] = 0
		return
	}
	c.minY[col] = uint8(minY)
	c.maxY[col] = uint8(maxY)
	if minY < c.chunkMinY {
		c.chunkMinY = minY
	}
	if maxY > c.chunkMaxY {
		c.chunkMaxY = maxY
	}
}

// RecalculateHeightmaps пересчитывает карту высот всего чанка, O(65536).
// Вызывается один раз после генерации ландшафта.
func (c *Chunk) RecalculateHeightmaps() {
	c.chunkMinY = ChunkSizeY - 1
	c.chunkMaxY = 0
	for z := 0; z < ChunkSizeZ; z++ {
		for x := 0; x < ChunkSizeX; x++ {
			c.RecalculateColumnHeight(x, z)
		}
	}
}

// ColumnMinY возвращает минимальный занятый Y колонки (255 для пустой)
func (c *Chunk) ColumnMinY(x, z int) uint8 {
	if x < 0 || x >= ChunkSizeX || z < 0 || z >= ChunkSizeZ {
		return ChunkSizeY - 1
	}
	return c.minY[x+z*ChunkSizeX]
}

// ColumnMaxY возвращает максимальный занятый Y колонки (0 для пустой)
func (c *Chunk) ColumnMaxY(x, z int) uint8 {
	if x < 0 || x >= ChunkSizeX || z < 0 || z >= ChunkSizeZ {
		return 0
	}
	return c.maxY[x+z*ChunkSizeX]
}

// MinY возвращает грубую нижнюю границу занятых блоков чанка
func (c *Chunk) MinY() int { return c.chunkMinY }

// MaxY возвращает грубую верхнюю границу занятых блоков чанка
func (c *Chunk) MaxY() int { return c.chunkMaxY }

// Dirty возвращает true, если чанк изменен и требует перестройки меша
func (c *Chunk) Dirty() bool { return c.dirty }

// MarkDirty помечает чанк измененным
func (c *Chunk) MarkDirty() { c.dirty = true }

// ClearDirty снимает пометку изменения (после постановки меша в очередь)
func (c *Chunk) ClearDirty() { c.dirty = false }

// HasWater возвращает true, если в чанке есть хотя бы один блок воды
func (c *Chunk) HasWater() bool { return c.hasWater }

// HasPendingWaterUpdates возвращает true, если есть неотработанные
// изменения воды
func (c *Chunk) HasPendingWaterUpdates() bool { return c.hasPendingWaterUpdates }

// FlushWaterUpdates сбрасывает флаг отложенных обновлений воды.
// Симуляция растекания не входит в ядро: источники остаются на месте.
func (c *Chunk) FlushWaterUpdates() {
	c.hasPendingWaterUpdates = false
}

// SubChunkEmpty возвращает true, если сабчанк гарантированно пуст
// (по грубым границам чанка)
func (c *Chunk) SubChunkEmpty(sub int) bool {
	if sub < 0 || sub >= SubChunkCount {
		return true
	}
	baseY := sub * SubChunkSize
	return baseY > c.chunkMaxY || baseY+SubChunkSize <= c.chunkMinY
}

// SubChunkHasWater возвращает true, если в сабчанке есть вода
func (c *Chunk) SubChunkHasWater(sub int) bool {
	if !c.hasWater || sub < 0 || sub >= SubChunkCount {
		return false
	}
	baseY := sub * SubChunkSize
	for y := baseY; y < baseY+SubChunkSize; y++ {
		for z := 0; z < ChunkSizeZ; z++ {
			for x := 0; x < ChunkSizeX; x++ {
				if c.waterLevels[index(x, y, z)] > 0 {
					return true
				}
			}
		}
	}
	return false
}

// BlocksEqual сравнивает массивы блоков двух чанков поэлементно
func (c *Chunk) BlocksEqual(other *Chunk) bool {
	if other == nil || len(c.blocks) != len(other.blocks) {
		return false
	}
	for i := range c.blocks {
		if c.blocks[i] != other.blocks[i] {
			return false
		}
	}
	return true
}

// BlockData возвращает массив блоков (только для чтения: сериализация, тесты)
func (c *Chunk) BlockData() []block.BlockID {
	return c.blocks
}

// WorldToChunk преобразует мировые блочные координаты в координаты чанка
func WorldToChunk(x, z int) vec.Vec2 {
	return vec.Vec2{X: vec.FloorDiv(x, ChunkSizeX), Z: vec.FloorDiv(z, ChunkSizeZ)}
}

// WorldToLocal преобразует мировые блочные координаты в локальные внутри чанка
func WorldToLocal(x, y, z int) (int, int, int) {
	return vec.Mod(x, ChunkSizeX), y, vec.Mod(z, ChunkSizeZ)
}

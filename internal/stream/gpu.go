package stream

import (
	"github.com/annel0/voxel-engine/internal/meshing"
)

// MaxFramesInFlight — глубина конвейера кадров рендера. Буфер,
// снятый с рендера, может читаться GPU еще столько кадров.
const MaxFramesInFlight = 2

// BufferHandle — непрозрачный идентификатор вершинного буфера.
// Ноль — отсутствие буфера.
type BufferHandle uint64

// Device — абстракция GPU, внедряемая в менеджер мира. Все вызовы
// строго из главного потока.
type Device interface {
	CreateVertexBuffer(data []meshing.PackedVertex) BufferHandle
	CreateWaterBuffer(data []meshing.WaterVertex) BufferHandle
	DeleteBuffer(handle BufferHandle)
}

// NullDevice — заглушка для headless-запуска и тестов:
// выдает уникальные дескрипторы, ничего не выделяя
type NullDevice struct {
	next BufferHandle
}

func (d *NullDevice) CreateVertexBuffer(data []meshing.PackedVertex) BufferHandle {
	if len(data) == 0 {
		return 0
	}
	d.next++
	return d.next
}

func (d *NullDevice) CreateWaterBuffer(data []meshing.WaterVertex) BufferHandle {
	if len(data) == 0 {
		return 0
	}
	d.next++
	return d.next
}

func (d *NullDevice) DeleteBuffer(handle BufferHandle) {}

// SubChunkHandle — GPU-состояние одного подчанка: буферы по уровням
// детализации, водный буфер и счетчики вершин для draw-вызовов
type SubChunkHandle struct {
	Index        int
	IsEmpty      bool
	LODs         [meshing.LODLevels]BufferHandle
	VertexCounts [meshing.LODLevels]int
	Water        BufferHandle
	WaterCount   int
}

// pendingDelete — буфер, ожидающий безопасного кадра для освобождения
type pendingDelete struct {
	handle BufferHandle
	frame  uint64
}

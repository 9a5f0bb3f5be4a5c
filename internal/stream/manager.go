package stream

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/voxel-engine/internal/block"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/meshing"
	"github.com/annel0/voxel-engine/internal/metrics"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

// Гистерезис выгрузки: чанк выгружается на пару чанков дальше границы
// загрузки, чтобы на краю радиуса не мерцали загрузка/выгрузка
const retentionMargin = 2

// Бюджет приема за кадр: сколько чанков и мешей главный поток
// выгребает за один Tick, размазывая стоимость GPU-загрузок
const defaultIngestBudget = 8

// ChunkMeshes — GPU-меши одного чанка по подчанкам
type ChunkMeshes struct {
	Coords    vec.Vec2
	SubChunks [world.SubChunkCount]SubChunkHandle
}

// WorldManager владеет загруженными чанками и их GPU-мешами.
// Все методы вызываются только из главного потока; воркеры конвейера
// общаются с менеджером исключительно через очереди.
type WorldManager struct {
	pipeline *ChunkPipeline
	device   Device

	loadedChunks map[vec.Vec2]*world.Chunk
	chunkMeshes  map[vec.Vec2]*ChunkMeshes
	needsMesh    map[vec.Vec2]struct{}

	observer     vec.Vec3Float
	renderRadius int
	ingestBudget int

	frame   uint64
	pending []pendingDelete
}

// NewWorldManager создает менеджер поверх конвейера и GPU-устройства
func NewWorldManager(pipeline *ChunkPipeline, device Device, renderRadius int) *WorldManager {
	if renderRadius < 1 {
		renderRadius = 1
	}
	return &WorldManager{
		pipeline:     pipeline,
		device:       device,
		loadedChunks: make(map[vec.Vec2]*world.Chunk),
		chunkMeshes:  make(map[vec.Vec2]*ChunkMeshes),
		needsMesh:    make(map[vec.Vec2]struct{}),
		renderRadius: renderRadius,
		ingestBudget: defaultIngestBudget,
	}
}

// SetObserverPosition задает позицию наблюдателя в мировых координатах
func (w *WorldManager) SetObserverPosition(pos vec.Vec3Float) {
	w.observer = pos
}

// SetIngestBudget задает число чанков и мешей, принимаемых за кадр
func (w *WorldManager) SetIngestBudget(n int) {
	if n < 1 {
		n = 1
	}
	w.ingestBudget = n
}

// SetRenderRadius задает радиус загрузки в чанках
func (w *WorldManager) SetRenderRadius(chunks int) {
	if chunks < 1 {
		chunks = 1
	}
	w.renderRadius = chunks
}

// LoadedChunkCount возвращает число загруженных чанков
func (w *WorldManager) LoadedChunkCount() int {
	return len(w.loadedChunks)
}

// ChunkAt возвращает загруженный чанк или nil
func (w *WorldManager) ChunkAt(coord vec.Vec2) *world.Chunk {
	return w.loadedChunks[coord]
}

// GetBlock возвращает блок по мировым координатам.
// Вне загруженных чанков — воздух.
func (w *WorldManager) GetBlock(wx, wy, wz int) block.BlockID {
	coord := world.WorldToChunk(wx, wz)
	chunk, ok := w.loadedChunks[coord]
	if !ok {
		return block.AirID
	}
	lx, ly, lz := world.WorldToLocal(wx, wy, wz)
	return chunk.Block(lx, ly, lz)
}

// SetBlock изменяет блок по мировым координатам и помечает чанк
// на перемеширование. Правка на границе чанка дополнительно пачкает
// соседа: у него могла открыться новая грань.
func (w *WorldManager) SetBlock(wx, wy, wz int, id block.BlockID) {
	coord := world.WorldToChunk(wx, wz)
	chunk, ok := w.loadedChunks[coord]
	if !ok {
		return
	}
	lx, ly, lz := world.WorldToLocal(wx, wy, wz)

	hadEmission := block.Emission(chunk.Block(lx, ly, lz)) > 0
	chunk.SetBlock(lx, ly, lz, id)
	w.needsMesh[coord] = struct{}{}

	// Излучающие правки требуют полного пересчета света чанка
	if hadEmission || block.Emission(id) > 0 {
		world.PropagateBlockLight(chunk)
	}

	for _, edge := range [4]struct {
		onBorder bool
		neighbor vec.Vec2
	}{
		{lx == 0, vec.Vec2{X: coord.X - 1, Z: coord.Z}},
		{lx == world.ChunkSizeX-1, vec.Vec2{X: coord.X + 1, Z: coord.Z}},
		{lz == 0, vec.Vec2{X: coord.X, Z: coord.Z - 1}},
		{lz == world.ChunkSizeZ-1, vec.Vec2{X: coord.X, Z: coord.Z + 1}},
	} {
		if !edge.onBorder {
			continue
		}
		if nb, loaded := w.loadedChunks[edge.neighbor]; loaded {
			nb.MarkDirty()
			w.needsMesh[edge.neighbor] = struct{}{}
		}
	}
}

// observerChunk возвращает координаты чанка наблюдателя
func (w *WorldManager) observerChunk() vec.Vec2 {
	p := w.observer.ToVec3()
	return world.WorldToChunk(p.X, p.Z)
}

// Tick — один кадр менеджера: пополнение очередей, прием готовых
// чанков и мешей, выгрузка дальних чанков, отложенное освобождение
// GPU-буферов
func (w *WorldManager) Tick(dt float64) {
	center := w.observerChunk()

	w.requestMissing(center)
	w.ingestChunks()
	w.queueDirtyMeshes()
	w.ingestMeshes()
	w.evictDistant(center)
	w.processPendingDeletes()

	w.frame++
	metrics.Get().ChunksLoaded.Set(float64(len(w.loadedChunks)))
}

// requestMissing ставит в генерацию недостающие чанки радиуса,
// ближние первыми: приоритета в конвейере нет, локальность задается
// порядком постановки
func (w *WorldManager) requestMissing(center vec.Vec2) {
	radius := w.renderRadius
	var wanted []vec.Vec2
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			coord := vec.Vec2{X: center.X + dx, Z: center.Z + dz}
			if int(math.Round(center.DistanceTo(coord))) > radius {
				continue
			}
			if _, loaded := w.loadedChunks[coord]; loaded {
				continue
			}
			wanted = append(wanted, coord)
		}
	}

	sort.Slice(wanted, func(i, j int) bool {
		return center.DistanceSq(wanted[i]) < center.DistanceSq(wanted[j])
	})

	for _, coord := range wanted {
		w.pipeline.QueueChunk(coord)
	}
}

// ingestChunks принимает готовые чанки и помечает на меширование их
// самих и уже загруженных соседей: у соседей пограничные квады
// строились против воздуха и теперь должны опираться на данные
func (w *WorldManager) ingestChunks() {
	for _, chunk := range w.pipeline.CompletedChunks(w.ingestBudget) {
		coord := chunk.Coords
		w.loadedChunks[coord] = chunk
		w.needsMesh[coord] = struct{}{}

		for _, nb := range [4]vec.Vec2{
			{X: coord.X - 1, Z: coord.Z}, {X: coord.X + 1, Z: coord.Z},
			{X: coord.X, Z: coord.Z - 1}, {X: coord.X, Z: coord.Z + 1},
		} {
			if _, loaded := w.loadedChunks[nb]; loaded {
				w.needsMesh[nb] = struct{}{}
			}
		}
	}
}

// queueDirtyMeshes ставит запросы мешей для всех помеченных чанков.
// Отклоненные (меш уже в работе) остаются помеченными до следующего
// кадра: устаревший результат в полете будет вытеснен свежим.
func (w *WorldManager) queueDirtyMeshes() {
	for coord := range w.needsMesh {
		chunk, loaded := w.loadedChunks[coord]
		if !loaded {
			delete(w.needsMesh, coord)
			continue
		}
		if w.pipeline.QueueMesh(w.makeMeshRequest(chunk)) {
			chunk.ClearDirty()
			delete(w.needsMesh, coord)
		}
	}
}

// makeMeshRequest снимает срез соседей на момент постановки: воркер
// читает только захваченные указатели и не трогает карты менеджера
func (w *WorldManager) makeMeshRequest(chunk *world.Chunk) meshing.MeshRequest {
	snapshot := map[vec.Vec2]*world.Chunk{chunk.Coords: chunk}
	coord := chunk.Coords
	for _, nb := range [4]vec.Vec2{
		{X: coord.X - 1, Z: coord.Z}, {X: coord.X + 1, Z: coord.Z},
		{X: coord.X, Z: coord.Z - 1}, {X: coord.X, Z: coord.Z + 1},
	} {
		if c, loaded := w.loadedChunks[nb]; loaded {
			snapshot[nb] = c
		}
	}

	blocks := func(wx, wy, wz int) block.BlockID {
		c, ok := snapshot[world.WorldToChunk(wx, wz)]
		if !ok {
			return block.AirID
		}
		lx, ly, lz := world.WorldToLocal(wx, wy, wz)
		return c.Block(lx, ly, lz)
	}
	light := func(wx, wy, wz int) uint8 {
		c, ok := snapshot[world.WorldToChunk(wx, wz)]
		if !ok {
			return 0
		}
		lx, ly, lz := world.WorldToLocal(wx, wy, wz)
		return c.LightLevel(lx, ly, lz)
	}

	return meshing.MeshRequest{Chunk: chunk, Neighbors: blocks, Light: light}
}

// ingestMeshes загружает готовые меши в GPU. Старые буферы той же
// пары (чанк, подчанк) не освобождаются сразу, а уходят в очередь
// отложенного удаления с номером текущего кадра.
func (w *WorldManager) ingestMeshes() {
	for _, result := range w.pipeline.CompletedMeshes(w.ingestBudget) {
		coord := result.Coords
		if _, loaded := w.loadedChunks[coord]; !loaded {
			// Чанк выгружен, пока меш был в полете
			continue
		}

		meshes, ok := w.chunkMeshes[coord]
		if !ok {
			meshes = &ChunkMeshes{Coords: coord}
			w.chunkMeshes[coord] = meshes
		}

		for i := range result.SubChunks {
			src := &result.SubChunks[i]
			dst := &meshes.SubChunks[i]
			w.retireSubChunk(dst)

			dst.Index = src.Index
			dst.IsEmpty = src.IsEmpty
			for lod := 0; lod < meshing.LODLevels; lod++ {
				dst.LODs[lod] = w.device.CreateVertexBuffer(src.LODs[lod])
				dst.VertexCounts[lod] = len(src.LODs[lod])
			}
			dst.Water = w.device.CreateWaterBuffer(src.Water)
			dst.WaterCount = len(src.Water)
		}
	}
}

// retireSubChunk отправляет буферы подчанка в отложенное удаление
func (w *WorldManager) retireSubChunk(h *SubChunkHandle) {
	for lod := 0; lod < meshing.LODLevels; lod++ {
		if h.LODs[lod] != 0 {
			w.pending = append(w.pending, pendingDelete{h.LODs[lod], w.frame})
			h.LODs[lod] = 0
		}
	}
	if h.Water != 0 {
		w.pending = append(w.pending, pendingDelete{h.Water, w.frame})
		h.Water = 0
	}
}

// evictDistant выгружает чанки за радиусом удержания
func (w *WorldManager) evictDistant(center vec.Vec2) {
	retention := w.renderRadius + retentionMargin
	for coord := range w.loadedChunks {
		if int(math.Round(center.DistanceTo(coord))) <= retention {
			continue
		}
		if meshes, ok := w.chunkMeshes[coord]; ok {
			for i := range meshes.SubChunks {
				w.retireSubChunk(&meshes.SubChunks[i])
			}
			delete(w.chunkMeshes, coord)
		}
		delete(w.loadedChunks, coord)
		delete(w.needsMesh, coord)
		metrics.Get().ChunksEvicted.Inc()
		logging.LogChunkEvicted(coord.X, coord.Z)
	}
}

// processPendingDeletes освобождает буферы, отслужившие все кадры
// в полете. Буфер безопасен к удалению спустя MaxFramesInFlight+1
// кадров после снятия с рендера.
func (w *WorldManager) processPendingDeletes() {
	keep := w.pending[:0]
	for _, pd := range w.pending {
		if w.frame-pd.frame >= MaxFramesInFlight+1 {
			w.device.DeleteBuffer(pd.handle)
		} else {
			keep = append(keep, pd)
		}
	}
	w.pending = keep
}

// VisibleSubChunkMesh — видимый подчанк для рендера с его мировым AABB
type VisibleSubChunkMesh struct {
	Coords vec.Vec2
	Handle *SubChunkHandle
	LOD    int
	Min    mgl32.Vec3
	Max    mgl32.Vec3
}

// VisibleSubChunkMeshes перечисляет непустые подчанки, пересекающие
// пирамиду видимости. nil-фрустум отключает отсечение. Уровень
// детализации выбирается по горизонтальной дистанции до наблюдателя.
func (w *WorldManager) VisibleSubChunkMeshes(frustum *meshing.Frustum) []VisibleSubChunkMesh {
	center := w.observerChunk()
	var out []VisibleSubChunkMesh

	for coord, meshes := range w.chunkMeshes {
		baseX, baseZ := coord.WorldOrigin()
		lod := selectLOD(center.DistanceTo(coord))

		for i := range meshes.SubChunks {
			h := &meshes.SubChunks[i]
			if h.IsEmpty || (h.VertexCounts[lod] == 0 && h.WaterCount == 0) {
				continue
			}
			min := mgl32.Vec3{float32(baseX), float32(i * world.SubChunkSize), float32(baseZ)}
			max := min.Add(mgl32.Vec3{world.ChunkSizeX, world.SubChunkSize, world.ChunkSizeZ})
			if frustum != nil && !frustum.IntersectsAABB(min, max) {
				continue
			}
			out = append(out, VisibleSubChunkMesh{
				Coords: coord, Handle: h, LOD: lod, Min: min, Max: max,
			})
		}
	}
	return out
}

// selectLOD выбирает уровень детализации по дистанции в чанках
func selectLOD(distChunks float64) int {
	switch {
	case distChunks <= 6:
		return 0
	case distChunks <= 12:
		return 1
	default:
		return meshing.LODLevels - 1
	}
}

// Shutdown останавливает конвейер и освобождает все GPU-буферы
func (w *WorldManager) Shutdown() {
	w.pipeline.Shutdown()
	for _, meshes := range w.chunkMeshes {
		for i := range meshes.SubChunks {
			w.retireSubChunk(&meshes.SubChunks[i])
		}
	}
	for _, pd := range w.pending {
		w.device.DeleteBuffer(pd.handle)
	}
	w.pending = nil
	logging.Info("Менеджер мира остановлен: %d чанков выгружено", len(w.loadedChunks))
}

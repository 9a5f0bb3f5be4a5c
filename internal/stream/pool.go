// Package stream содержит многопоточный конвейер потоковой загрузки
// чанков: пул воркеров генерации и меширования плюс менеджер мира,
// который владеет загруженными чанками и GPU-состоянием.
package stream

import (
	"sync"
	"time"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/meshing"
	"github.com/annel0/voxel-engine/internal/metrics"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

// Емкость очередей. Очереди ограничены радиусом загрузки, а не
// жестким лимитом: переполнение — не ошибка, вызывающий повторит.
const queueCapacity = 4096

// ChunkPipeline — пул воркеров с двумя параллельными очередями:
// генерация чанков и построение мешей. Результаты складываются в
// очереди завершения, которые главный поток выгребает неблокирующе.
type ChunkPipeline struct {
	seed int64

	genQueue        chan vec.Vec2
	meshQueue       chan meshing.MeshRequest
	completedChunks chan *world.Chunk
	completedMeshes chan *meshing.MeshResult

	mu             sync.Mutex
	inProgress     map[vec.Vec2]struct{}
	meshInProgress map[vec.Vec2]struct{}

	wg           sync.WaitGroup
	shutdownChan chan struct{}
	shutdownOnce sync.Once
}

// NewChunkPipeline создает конвейер и запускает воркеров.
// Пул делится примерно пополам между генерацией и мешированием,
// минимум по одному воркеру каждого типа.
func NewChunkPipeline(seed int64, workers int) *ChunkPipeline {
	if workers < 2 {
		workers = 2
	}
	genWorkers := workers / 2
	if genWorkers < 1 {
		genWorkers = 1
	}
	meshWorkers := workers - genWorkers
	if meshWorkers < 1 {
		meshWorkers = 1
	}

	p := &ChunkPipeline{
		seed:            seed,
		genQueue:        make(chan vec.Vec2, queueCapacity),
		meshQueue:       make(chan meshing.MeshRequest, queueCapacity),
		completedChunks: make(chan *world.Chunk, queueCapacity),
		completedMeshes: make(chan *meshing.MeshResult, queueCapacity),
		inProgress:      make(map[vec.Vec2]struct{}),
		meshInProgress:  make(map[vec.Vec2]struct{}),
		shutdownChan:    make(chan struct{}),
	}

	for i := 0; i < genWorkers; i++ {
		p.wg.Add(1)
		go p.genWorker()
	}
	for i := 0; i < meshWorkers; i++ {
		p.wg.Add(1)
		go p.meshWorker()
	}

	logging.Info("Конвейер чанков запущен: %d воркеров генерации, %d меширования",
		genWorkers, meshWorkers)
	return p
}

// genWorker — цикл воркера генерации. Каждый воркер держит собственный
// TerrainGenerator: шумовые объекты нельзя разделять между потоками,
// но при одинаковом зерне они детерминированы.
func (p *ChunkPipeline) genWorker() {
	defer p.wg.Done()
	gen := world.NewTerrainGenerator(p.seed)
	m := metrics.Get()

	for {
		select {
		case <-p.shutdownChan:
			return
		case coord := <-p.genQueue:
			start := time.Now()
			chunk := gen.Generate(coord)
			elapsed := time.Since(start)

			m.ChunksGenerated.Inc()
			m.GenDuration.Observe(elapsed.Seconds())
			m.GenQueueDepth.Set(float64(len(p.genQueue)))
			logging.LogChunkGenerated(coord.X, coord.Z, float64(elapsed.Microseconds())/1000.0)

			select {
			case p.completedChunks <- chunk:
			case <-p.shutdownChan:
				return
			}
		}
	}
}

// meshWorker — цикл воркера меширования
func (p *ChunkPipeline) meshWorker() {
	defer p.wg.Done()
	m := metrics.Get()

	for {
		select {
		case <-p.shutdownChan:
			return
		case req := <-p.meshQueue:
			start := time.Now()
			result := meshing.BuildMesh(req.Chunk, req.Neighbors, req.Light)
			elapsed := time.Since(start)

			vertices := 0
			for i := range result.SubChunks {
				vertices += len(result.SubChunks[i].LODs[0])
			}
			m.MeshesBuilt.Inc()
			m.MeshDuration.Observe(elapsed.Seconds())
			m.MeshQueueDepth.Set(float64(len(p.meshQueue)))
			logging.LogMeshBuilt(result.Coords.X, result.Coords.Z, vertices,
				float64(elapsed.Microseconds())/1000.0)

			select {
			case p.completedMeshes <- result:
			case <-p.shutdownChan:
				return
			}
		}
	}
}

// QueueChunk ставит чанк в очередь генерации. Повторная постановка
// невыгребленного или обрабатываемого чанка — noop. После остановки
// конвейера все постановки отбрасываются.
func (p *ChunkPipeline) QueueChunk(coord vec.Vec2) bool {
	select {
	case <-p.shutdownChan:
		return false
	default:
	}

	p.mu.Lock()
	if _, busy := p.inProgress[coord]; busy {
		p.mu.Unlock()
		return false
	}
	p.inProgress[coord] = struct{}{}
	p.mu.Unlock()

	select {
	case p.genQueue <- coord:
		metrics.Get().GenQueueDepth.Set(float64(len(p.genQueue)))
		return true
	default:
		// Очередь переполнена: снимаем метку, вызывающий повторит
		p.mu.Lock()
		delete(p.inProgress, coord)
		p.mu.Unlock()
		return false
	}
}

// QueueMesh ставит запрос на построение меша. Дедупликация по
// координатам чанка: пока меш в работе или не выгреблен, noop.
func (p *ChunkPipeline) QueueMesh(req meshing.MeshRequest) bool {
	select {
	case <-p.shutdownChan:
		return false
	default:
	}

	coord := req.Chunk.Coords
	p.mu.Lock()
	if _, busy := p.meshInProgress[coord]; busy {
		p.mu.Unlock()
		return false
	}
	p.meshInProgress[coord] = struct{}{}
	p.mu.Unlock()

	select {
	case p.meshQueue <- req:
		metrics.Get().MeshQueueDepth.Set(float64(len(p.meshQueue)))
		return true
	default:
		p.mu.Lock()
		delete(p.meshInProgress, coord)
		p.mu.Unlock()
		return false
	}
}

// CompletedChunks выгребает до max готовых чанков без блокировки.
// Метка in-progress снимается только здесь: до выгребания повторная
// постановка того же чанка остается noop.
func (p *ChunkPipeline) CompletedChunks(max int) []*world.Chunk {
	var out []*world.Chunk
	for len(out) < max {
		select {
		case chunk := <-p.completedChunks:
			p.mu.Lock()
			delete(p.inProgress, chunk.Coords)
			p.mu.Unlock()
			out = append(out, chunk)
		default:
			return out
		}
	}
	return out
}

// CompletedMeshes выгребает до max готовых мешей без блокировки
func (p *ChunkPipeline) CompletedMeshes(max int) []*meshing.MeshResult {
	var out []*meshing.MeshResult
	for len(out) < max {
		select {
		case result := <-p.completedMeshes:
			p.mu.Lock()
			delete(p.meshInProgress, result.Coords)
			p.mu.Unlock()
			out = append(out, result)
		default:
			return out
		}
	}
	return out
}

// InProgress сообщает, находится ли чанк в работе или в невыгребленных
// результатах генерации
func (p *ChunkPipeline) InProgress(coord vec.Vec2) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, busy := p.inProgress[coord]
	return busy
}

// Shutdown останавливает воркеров и дожидается их завершения.
// Все невыгребленные задания отбрасываются; блокировки навсегда
// быть не может — воркеры слушают канал остановки в каждой точке.
func (p *ChunkPipeline) Shutdown() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownChan)
		p.wg.Wait()
		logging.Info("Конвейер чанков остановлен")
	})
}

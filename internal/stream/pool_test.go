package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

// waitFor крутит условие до истечения срока; асинхронные тесты
// конвейера не должны зависеть от скорости машины
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.Fail(t, msg)
}

// Потоковая загрузка области: все чанки приходят ровно по одному разу
func TestPipelineStreamsRegion(t *testing.T) {
	p := NewChunkPipeline(12345, 4)
	defer p.Shutdown()

	const radius = 8
	queued := 0
	for x := -radius; x <= radius; x++ {
		for z := -radius; z <= radius; z++ {
			require.True(t, p.QueueChunk(vec.Vec2{X: x, Z: z}),
				"Постановка (%d,%d) в пустую очередь обязана пройти", x, z)
			queued++
		}
	}

	seen := map[vec.Vec2]int{}
	waitFor(t, 60*time.Second, func() bool {
		for _, chunk := range p.CompletedChunks(32) {
			seen[chunk.Coords]++
		}
		return len(seen) == queued
	}, "Конвейер не отдал все чанки области")

	for coord, n := range seen {
		assert.Equal(t, 1, n, "Чанк (%d,%d) пришел %d раз", coord.X, coord.Z, n)
	}
}

// Повторная постановка чанка в работе — noop до выгребания результата
func TestQueueChunkDedupe(t *testing.T) {
	p := NewChunkPipeline(1, 2)
	defer p.Shutdown()

	coord := vec.Vec2{X: 3, Z: -7}
	require.True(t, p.QueueChunk(coord))
	assert.False(t, p.QueueChunk(coord), "Чанк в работе не ставится повторно")
	assert.True(t, p.InProgress(coord))

	var got *world.Chunk
	waitFor(t, 30*time.Second, func() bool {
		for _, chunk := range p.CompletedChunks(4) {
			if chunk.Coords == coord {
				got = chunk
			}
		}
		return got != nil
	}, "Чанк не сгенерировался")

	assert.False(t, p.InProgress(coord))
	assert.True(t, p.QueueChunk(coord), "После выгребания постановка снова доступна")
}

// Меширование через конвейер: результат несет координаты чанка,
// дедупликация держится до выгребания
func TestPipelineMeshRoundTrip(t *testing.T) {
	p := NewChunkPipeline(12345, 2)
	defer p.Shutdown()

	gen := world.NewTerrainGenerator(12345)
	chunk := gen.Generate(vec.Vec2{X: 2, Z: 2})

	req := makeStandaloneMeshRequest(chunk)
	require.True(t, p.QueueMesh(req))
	assert.False(t, p.QueueMesh(req), "Меш в работе не ставится повторно")

	done := false
	waitFor(t, 30*time.Second, func() bool {
		for _, result := range p.CompletedMeshes(4) {
			assert.Equal(t, chunk.Coords, result.Coords)
			done = true
		}
		return done
	}, "Меш не построился")

	assert.True(t, p.QueueMesh(req), "После выгребания меш ставится заново")
}

// Выгребание уважает бюджет кадра
func TestCompletedChunksBudget(t *testing.T) {
	p := NewChunkPipeline(5, 2)
	defer p.Shutdown()

	coords := []vec.Vec2{{X: 0, Z: 0}, {X: 1, Z: 0}, {X: 0, Z: 1}}
	for _, c := range coords {
		require.True(t, p.QueueChunk(c))
	}

	total := 0
	waitFor(t, 30*time.Second, func() bool {
		got := p.CompletedChunks(1)
		assert.LessOrEqual(t, len(got), 1, "Бюджет выгребания нарушен")
		total += len(got)
		return total == len(coords)
	}, "Чанки не пришли")
}

// После остановки конвейер отбрасывает любые постановки
func TestPipelineShutdown(t *testing.T) {
	p := NewChunkPipeline(1, 2)
	p.Shutdown()
	p.Shutdown() // повторная остановка безопасна

	assert.False(t, p.QueueChunk(vec.Vec2{X: 1, Z: 1}))

	chunk := world.NewChunk(vec.Vec2{X: 1, Z: 1})
	assert.False(t, p.QueueMesh(makeStandaloneMeshRequest(chunk)))
}

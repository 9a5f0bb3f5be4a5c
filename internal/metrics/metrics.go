// Package metrics собирает Prometheus-метрики конвейера чанков.
// Метрики регистрируются в глобальном регистре при первом обращении;
// HTTP-эндпоинт запускается отдельно и по желанию.
package metrics

import (
	"net/http"
	"sync"

	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PipelineMetrics инкапсулирует метрики генерации и меширования чанков
type PipelineMetrics struct {
	ChunksGenerated prometheus.Counter
	MeshesBuilt     prometheus.Counter
	ChunksEvicted   prometheus.Counter
	ChunksLoaded    prometheus.Gauge
	GenQueueDepth   prometheus.Gauge
	MeshQueueDepth  prometheus.Gauge
	GenDuration     prometheus.Histogram
	MeshDuration    prometheus.Histogram
}

var (
	global     *PipelineMetrics
	globalOnce sync.Once
)

// Get возвращает глобальный набор метрик, регистрируя его при первом вызове
func Get() *PipelineMetrics {
	globalOnce.Do(func() {
		global = &PipelineMetrics{
			ChunksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "engine",
				Name:      "chunks_generated_total",
				Help:      "Общее число сгенерированных чанков.",
			}),
			MeshesBuilt: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "engine",
				Name:      "meshes_built_total",
				Help:      "Общее число построенных мешей чанков.",
			}),
			ChunksEvicted: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "engine",
				Name:      "chunks_evicted_total",
				Help:      "Чанков, выгруженных за пределами радиуса удержания.",
			}),
			ChunksLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "engine",
				Name:      "chunks_loaded",
				Help:      "Количество чанков, загруженных в данный момент.",
			}),
			GenQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "engine",
				Name:      "generation_queue_depth",
				Help:      "Глубина очереди генерации чанков.",
			}),
			MeshQueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: "engine",
				Name:      "mesh_queue_depth",
				Help:      "Глубина очереди меширования.",
			}),
			GenDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: "engine",
				Name:      "chunk_generation_seconds",
				Help:      "Время генерации одного чанка.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			}),
			MeshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: "engine",
				Name:      "mesh_build_seconds",
				Help:      "Время построения меша одного чанка.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
			}),
		}

		prometheus.MustRegister(
			global.ChunksGenerated, global.MeshesBuilt, global.ChunksEvicted,
			global.ChunksLoaded, global.GenQueueDepth, global.MeshQueueDepth,
			global.GenDuration, global.MeshDuration,
		)
	})
	return global
}

// StartHTTP запускает HTTP-эндпоинт Prometheus на указанном адресе
// (например, ":2112"). Метод неблокирующий.
func StartHTTP(addr string) {
	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		if err := http.ListenAndServe(addr, promhttp.Handler()); err != nil {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}

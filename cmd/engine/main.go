package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-engine/internal/config"
	"github.com/annel0/voxel-engine/internal/logging"
	"github.com/annel0/voxel-engine/internal/metrics"
	"github.com/annel0/voxel-engine/internal/stream"
	"github.com/annel0/voxel-engine/internal/vec"
	"github.com/annel0/voxel-engine/internal/world"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации")
	seedFlag := flag.Int64("seed", 0, "зерно мира (перекрывает конфиг)")
	radiusFlag := flag.Int("radius", 0, "радиус загрузки в чанках (перекрывает конфиг)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitLogger(); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()

	logging.Info("🌍 Запуск воксельного движка (headless)...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("Ошибка чтения конфигурации: %v", err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	seed := cfg.World.GetSeed()
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	radius := cfg.World.GetRenderRadius()
	if *radiusFlag > 0 {
		radius = *radiusFlag
	}
	workers := cfg.Pipeline.GetWorkers()

	logging.Info("📡 Конфигурация: seed=%d, радиус=%d чанков, воркеров=%d",
		seed, radius, workers)

	// === МЕТРИКИ ===
	if cfg.Metrics.Enabled {
		metrics.StartHTTP(fmt.Sprintf(":%d", cfg.Metrics.GetMetricsPort()))
	}

	// === КОНВЕЙЕР И МЕНЕДЖЕР МИРА ===
	pipeline := stream.NewChunkPipeline(seed, workers)
	manager := stream.NewWorldManager(pipeline, &stream.NullDevice{}, radius)
	manager.SetIngestBudget(cfg.Pipeline.GetIngestBudget())

	// Наблюдатель стартует над уровнем моря в начале координат и
	// медленно движется по диагонали, прогоняя потоковую загрузку
	observer := vec.Vec3Float{X: 8, Y: float64(world.SeaLevel + 20), Z: 8}
	manager.SetObserverPosition(observer)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	const frameTime = time.Second / 60
	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	statsEvery := time.NewTicker(5 * time.Second)
	defer statsEvery.Stop()

	logging.Info("✅ Движок запущен, Ctrl+C для остановки")

run:
	for {
		select {
		case <-stop:
			break run
		case <-statsEvery.C:
			visible := manager.VisibleSubChunkMeshes(nil)
			logging.Info("📊 Загружено чанков: %d, видимых подчанков: %d",
				manager.LoadedChunkCount(), len(visible))
		case <-ticker.C:
			observer.X += 2.0 * frameTime.Seconds()
			observer.Z += 2.0 * frameTime.Seconds()
			manager.SetObserverPosition(observer)
			manager.Tick(frameTime.Seconds())
		}
	}

	logging.Info("⏳ Остановка движка...")
	manager.Shutdown()
	logging.Info("✅ Движок остановлен")
}

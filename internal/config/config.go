package config

import (
	"io/ioutil"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации движка.

type Config struct {
	World    WorldConfig    `yaml:"world"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type WorldConfig struct {
	Seed         int64 `yaml:"seed"`
	RenderRadius int   `yaml:"render_radius"`
}

type PipelineConfig struct {
	Workers      int `yaml:"workers"`
	IngestBudget int `yaml:"ingest_budget"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// GetSeed возвращает зерно мира с поддержкой fallback значений
func (w *WorldConfig) GetSeed() int64 {
	if w.Seed != 0 {
		return w.Seed
	}
	if envVal := os.Getenv("ENGINE_SEED"); envVal != "" {
		if seed, err := strconv.ParseInt(envVal, 10, 64); err == nil {
			return seed
		}
	}
	return 12345
}

// GetRenderRadius возвращает радиус загрузки в чанках
func (w *WorldConfig) GetRenderRadius() int {
	return getIntWithEnvFallback(w.RenderRadius, "ENGINE_RENDER_RADIUS", 8)
}

// GetWorkers возвращает размер пула воркеров.
// По умолчанию — число логических процессоров, минимум 2.
func (p *PipelineConfig) GetWorkers() int {
	def := runtime.NumCPU()
	if def < 2 {
		def = 2
	}
	return getIntWithEnvFallback(p.Workers, "ENGINE_WORKERS", def)
}

// GetIngestBudget возвращает бюджет приема чанков и мешей за кадр
func (p *PipelineConfig) GetIngestBudget() int {
	return getIntWithEnvFallback(p.IngestBudget, "ENGINE_INGEST_BUDGET", 8)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (m *MetricsConfig) GetMetricsPort() int {
	return getIntWithEnvFallback(m.Port, "ENGINE_METRICS_PORT", 2112)
}

// getIntWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getIntWithEnvFallback(configVal int, envVar string, defaultVal int) int {
	// Если значение задано в конфиге и больше 0, используем его
	if configVal > 0 {
		return configVal
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if v, err := strconv.Atoi(envVal); err == nil && v > 0 {
			return v
		}
	}

	// Используем дефолтное значение
	return defaultVal
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV ENGINE_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("ENGINE_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

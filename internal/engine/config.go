package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска симуляции.
type Config struct {
	// Seed - мастер-зерно. От него зависят мозги акторов и спавн контента.
	Seed int64 `yaml:"seed"`

	// Ticks — бюджет тиков (0 - крутиться до отмены контекста).
	Ticks int `yaml:"ticks"`

	// TickIntervalMs — пауза между тиками в миллисекундах
	// (0 - гнать тики без пауз, полезно в тестах).
	TickIntervalMs int `yaml:"tick_interval_ms"`

	// ProgressEveryTicks — период прогресс-лога раннера.
	ProgressEveryTicks int `yaml:"progress_every_ticks"`

	// ContentPath — путь к YAML-файлу шаблонов контента
	// (пусто - встроенный набор).
	ContentPath string `yaml:"content_path"`
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:               time.Now().UnixNano(),
		Ticks:              100,
		TickIntervalMs:     50,
		ProgressEveryTicks: 20,
	}
}

// LoadConfig читает конфиг из YAML-файла поверх значений по умолчанию.
func LoadConfig(path string) (Config, error) {
	cfg := NewConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// TickInterval возвращает паузу между тиками как Duration.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the tool configuration assembled from defaults and FASTULID_*
// environment variables.
type Config struct {
	LogLevel  string        `env:"FASTULID_LOG_LEVEL" envDefault:"info"`
	LogFormat string        `env:"FASTULID_LOG_FORMAT" envDefault:"text"`
	Strategy  string        `env:"FASTULID_STRATEGY" envDefault:"monotonic"`
	Clock     string        `env:"FASTULID_CLOCK" envDefault:"system"`
	MaxWait   time.Duration `env:"FASTULID_MAX_WAIT" envDefault:"250ms"`
}

// Default returns built-in defaults without consulting the environment.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Strategy:  "monotonic",
		Clock:     "system",
		MaxWait:   250 * time.Millisecond,
	}
}

// Load returns defaults overlaid with FASTULID_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

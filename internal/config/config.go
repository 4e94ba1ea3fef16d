package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the API server settings
type Config struct {
	Addr              string        `env:"DOMINANCE_ADDR" envDefault:":8080"`
	FetchTimeout      time.Duration `env:"DOMINANCE_FETCH_TIMEOUT" envDefault:"15s"`
	FetchRetries      int           `env:"DOMINANCE_FETCH_RETRIES" envDefault:"3"`
	MaxUploadBytes    int64         `env:"DOMINANCE_MAX_UPLOAD_BYTES" envDefault:"33554432"`
	EnableMetrics     bool          `env:"DOMINANCE_ENABLE_METRICS" envDefault:"true"`
	EnableSwagger     bool          `env:"DOMINANCE_ENABLE_SWAGGER" envDefault:"true"`
	DefaultTopN       int           `env:"DOMINANCE_TOP_N" envDefault:"20"`
	ShutdownTimeout   time.Duration `env:"DOMINANCE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel          string        `env:"DOMINANCE_LOG_LEVEL" envDefault:"info"`
	AllowLocalSources bool          `env:"DOMINANCE_ALLOW_LOCAL_SOURCES" envDefault:"false"` // file and sqlite sources read the server's disk
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("DOMINANCE_ADDR must not be empty")
	}
	if c.FetchRetries < 1 {
		return fmt.Errorf("DOMINANCE_FETCH_RETRIES must be at least 1, got %d", c.FetchRetries)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("DOMINANCE_MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.DefaultTopN < 0 {
		return fmt.Errorf("DOMINANCE_TOP_N must not be negative, got %d", c.DefaultTopN)
	}
	return nil
}

// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" env-default:":3000"`
	CatalogPath string `env:"CATALOG_PATH" env-default:"pc_parts.db"`

	// AI analyzer settings. Leaving the key empty disables the analyzer
	// entirely; the heuristic engine serves every request.
	AIAPIKey  string `env:"AI_API_KEY" env-default:""`
	AIBaseURL string `env:"AI_BASE_URL" env-default:""`
	AIModel   string `env:"AI_MODEL" env-default:"gpt-4o-mini"`

	SearchTimeout    time.Duration `env:"SEARCH_TIMEOUT" env-default:"15s"`
	SearchMaxResults int           `env:"SEARCH_MAX_RESULTS" env-default:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if cfg.SearchMaxResults < 1 {
		cfg.SearchMaxResults = 10
	}
	return cfg, nil
}

package main

import (
	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	Width   int    `env:"MEMORY_DRIFT_WIDTH" envDefault:"1280"`
	Height  int    `env:"MEMORY_DRIFT_HEIGHT" envDefault:"720"`
	TPS     int    `env:"MEMORY_DRIFT_TPS" envDefault:"60"`
	SaveDir string `env:"MEMORY_DRIFT_SAVE_DIR" envDefault:"saves"`
	Seed    int64  `env:"MEMORY_DRIFT_SEED" envDefault:"0"` // 0 = time-based
}

func loadConfig() (Config, error) {
	var cfg Config
	err := env.Parse(&cfg)
	return cfg, err
}

package main

import (
	"log/slog"

	"github.com/dmitrymomot/anketa/pkg/environment"
	"github.com/dmitrymomot/anketa/pkg/logger"
)

// envPrefix is prepended to every variable name of Config.
const envPrefix = "ANKETA_"

// Config is read from ANKETA_* environment variables and an optional .env file.
type Config struct {
	Env      environment.Environment `env:"ENV" envDefault:"development"`
	Lang     string                  `env:"LANG" envDefault:"ru"`
	LogLevel slog.Level              `env:"LOG_LEVEL" envDefault:"warn"`
	// Empty keeps the format chosen for Env.
	LogFormat logger.Format `env:"LOG_FORMAT"`
}

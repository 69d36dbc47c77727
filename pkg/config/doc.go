// Package config loads application configuration from environment variables
// into tagged Go structs.
//
// It wraps `github.com/joho/godotenv` for optional `.env` files and
// `github.com/caarlos0/env/v11` for struct parsing. Any field type that
// implements encoding.TextUnmarshaler (slog.Level, environment.Environment,
// ...) is decoded directly.
//
// # Usage
//
//	type Config struct {
//	    Env      environment.Environment `env:"ENV" envDefault:"development"`
//	    Lang     string                  `env:"LANG" envDefault:"ru"`
//	    LogLevel slog.Level              `env:"LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("ANKETA_")); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Parsing failures wrap ErrParsingConfig, explicit env file failures wrap
// ErrLoadingEnvFile; both can be checked with errors.Is.
package config

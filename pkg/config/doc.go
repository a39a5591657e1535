// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for tag-driven parsing:
//
//	type CLIConfig struct {
//	    Env            string        `env:"VALIDFLOW_ENV" envDefault:"development"`
//	    TakenUsernames []string      `env:"VALIDFLOW_TAKEN_USERNAMES" envSeparator:","`
//	    LookupLatency  time.Duration `env:"VALIDFLOW_LOOKUP_LATENCY" envDefault:"0s"`
//	}
//
//	var cfg CLIConfig
//	config.MustLoad(&cfg)
//
// Each config type is parsed once and cached by type. ResetCache clears the
// cache, which tests use after changing the environment.
//
// # Error Handling
//
// Sentinel errors work with errors.Is: ErrParsingConfig, ErrLoadingEnvFile,
// ErrNilPointer. Parse errors are joined with the underlying env error.
package config

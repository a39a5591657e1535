package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/validflow/pkg/logger"
)

type cliConfig struct {
	Env            string        `env:"VALIDFLOW_ENV" envDefault:"development"`
	Service        string        `env:"VALIDFLOW_SERVICE" envDefault:"validflow"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFormat      string        `env:"LOG_FORMAT"`
	MinPassword    int           `env:"VALIDFLOW_MIN_PASSWORD" envDefault:"8"`
	TakenUsernames []string      `env:"VALIDFLOW_TAKEN_USERNAMES" envSeparator:","`
	LookupLatency  time.Duration `env:"VALIDFLOW_LOOKUP_LATENCY" envDefault:"0s"`
	Timeout        time.Duration `env:"VALIDFLOW_TIMEOUT" envDefault:"0s"`
}

type sourceKey struct{}

// newLogger applies environment defaults first so explicit LOG_* settings win.
func newLogger(cfg cliConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithOutput(w),
		logger.WithContextValue("source", sourceKey{}),
	}

	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	if cfg.LogFormat != "" {
		format := logger.Format(strings.ToLower(cfg.LogFormat))
		if format != logger.FormatJSON && format != logger.FormatText {
			return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
		}
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}

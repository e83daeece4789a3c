// Package logging sets up the file-backed structured logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config selects where and how verbosely to log.
type Config struct {
	Path  string
	Debug bool
}

// Setup opens the log file and returns a logger writing to it together with a
// cleanup func closing the file. The terminal belongs to the TUI, so nothing
// is written to stderr.
func Setup(cfg Config) (zerolog.Logger, func() error, error) {
	if cfg.Path == "" {
		return zerolog.Nop(), noop, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to open log file: %w", err)
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(f).
		Level(level).
		With().
		Timestamp().
		Logger()
	if cfg.Debug {
		logger = logger.With().Caller().Logger()
	}
	logger.Debug().Str("path", cfg.Path).Msg("logger initialized")

	return logger, f.Close, nil
}

func noop() error { return nil }

func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
}

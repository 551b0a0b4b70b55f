package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
)

// New builds the root logger from the log section of the config. Debug mode
// forces the debug level regardless of log.level.
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stderr
	if !cfg.Log.JSON {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	level := ParseLevel(cfg.Log.Level)
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	return NewWithWriter(out, level)
}

func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged the way every subsystem logs.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

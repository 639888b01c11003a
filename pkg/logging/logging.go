// Package logging builds the service's structured loggers on slog.
// The process logger keeps its level adjustable so a configuration reload
// can raise or lower verbosity without rebuilding handlers, and feature
// packages log through module-scoped children of it.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// ModuleKey is the attribute naming the package a record came from.
const ModuleKey = "module"

// Logger is the process logger together with its adjustable level.
type Logger struct {
	*slog.Logger
	level *slog.LevelVar
}

// New creates a logger writing to w in the configured format.
func New(cfg *Config, w io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(cfg.Level.ToSlogLevel())

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(handler), level: level}
}

// Bootstrap returns the JSON logger used before configuration is loaded.
func Bootstrap(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, nil))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Module returns a child of logger tagged with the module name.
func Module(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(ModuleKey, name)
}

// Level reports the level currently enforced.
func (l *Logger) Level() Level {
	switch l.level.Level() {
	case slog.LevelDebug:
		return LevelDebug
	case slog.LevelWarn:
		return LevelWarn
	case slog.LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

// Apply adopts the level of a reloaded configuration. Format and source
// settings are fixed at construction; a change to either is reported and
// otherwise ignored.
func (l *Logger) Apply(prev, next *Config) {
	if next.Level != prev.Level {
		l.level.Set(next.Level.ToSlogLevel())
		l.Info("log level changed", "from", prev.Level, "to", next.Level)
	}
	if next.Format != prev.Format || next.AddSource != prev.AddSource {
		l.Warn("log format changes apply after restart",
			"format", next.Format,
			"add_source", next.AddSource,
		)
	}
}

// Level represents a logging severity level.
type Level string

// Log level constants.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Validate checks if the level is a valid logging level.
func (l Level) Validate() error {
	switch l {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l)
	}
}

// ToSlogLevel converts the Level to its slog.Level equivalent.
// Unknown levels default to slog.LevelInfo.
func (l Level) ToSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Format represents the log output format.
type Format string

// Log format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Validate checks if the format is a valid logging format.
func (f Format) Validate() error {
	switch f {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", f)
	}
}

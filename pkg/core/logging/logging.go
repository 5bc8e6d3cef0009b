// Package logging creates the named loggers used by the CLI. Logs go to
// stderr so stdout stays reserved for the validation report.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New creates a logger with the default info level.
func New(name string) *slog.Logger {
	return NewWithLevel(name, "info")
}

// NewWithLevel creates a named logger at the given level. Unknown level
// strings fall back to info.
func NewWithLevel(name, level string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With("logger", name)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

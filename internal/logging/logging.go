// Package logging installs the process-wide slog handler.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lepinkainen/humanlog"
)

// ParseLevel maps a LOG_LEVEL value to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New returns a human-readable logger writing to w.
func New(w io.Writer, level string) *slog.Logger {
	handler := humanlog.NewHandler(w, &humanlog.Options{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

// Setup makes a stdout logger at level the default and returns it.
func Setup(level string) *slog.Logger {
	logger := New(os.Stdout, level)
	slog.SetDefault(logger)
	return logger
}

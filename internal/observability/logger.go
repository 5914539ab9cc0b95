// Package observability builds the tool's structured logger from config.
package observability

import (
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/meteo-grid/internal/config"
)

// NewLogger constructs a slog.Logger honoring LOG_LEVEL and LOG_FORMAT.
// Logs go to stderr so command output (paths, year lists) stays clean on stdout.
func NewLogger(cfg *config.Config) *slog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

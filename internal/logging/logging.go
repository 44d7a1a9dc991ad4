// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a logger and sets it as the default.
// format is "text" or "json"; level is debug, info, warn or error.
// Empty values fall back to LOG_FORMAT and LOG_LEVEL, then to text/info.
func New(format, level string, w io.Writer) *slog.Logger {
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog.Level. Unknown names are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

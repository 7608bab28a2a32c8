package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New initializes a new slog logger and sets it as the default.
// format selects the output: "text" for development (the default) or "json"
// for production. level is one of debug, info, warn or error.
func New(format, level string) *slog.Logger {
	logger := NewWithWriter(os.Stdout, format, level)
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter builds a logger writing to w without touching the default.
func NewWithWriter(w io.Writer, format, level string) *slog.Logger {
	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: ParseLevel(level),
		})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     ParseLevel(level),
			AddSource: true, // Adds source file and line number
		})
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to a slog.Level, defaulting to debug.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

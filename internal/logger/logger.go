// Package logger builds the process-wide slog logger from LOG_LEVEL and
// LOG_FORMAT so every component shares one configuration.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// SetupWith builds the process logger and installs it as slog.Default().
// level: debug|info|warn|error (default info); format: text|json (default text).
func SetupWith(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	l := slog.New(h)
	slog.SetDefault(l)

	return l
}

// ParseLevel maps a level name to slog.Level; unknown names yield Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}

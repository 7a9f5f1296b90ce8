// Package logging provides helpers to construct configured slog.Loggers.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger returns a slog.Logger writing text logs to w at the provided
// level. Supported levels: debug, info, warn, error.
func NewLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler)
}

// NewAuditLogger returns a JSON slog.Logger for the trade audit trail. Audit
// records are always written at info level regardless of LOG_LEVEL.
func NewAuditLogger(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler)
}

func parseLevel(level string) slog.Leveler {
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

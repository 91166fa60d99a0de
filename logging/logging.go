// Package logging builds the structured logger used by the tinyc driver.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/metaphox/tinyc/config"
)

// New returns a logger writing to w at the level and in the format named by
// cfg. Unknown values fall back to info and text.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// WithRun tags every record of log with a fresh run ID so that the lines of
// one invocation can be grouped.
func WithRun(log *slog.Logger) (*slog.Logger, string) {
	id := uuid.NewString()
	return log.With("run_id", id), id
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

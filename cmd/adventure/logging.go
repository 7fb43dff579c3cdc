package main

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-adventure/internal/config"
)

// newLogger builds the diagnostic logger. Diagnostics go to stderr so
// they never interleave with the game on stdout.
func newLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

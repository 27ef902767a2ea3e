// Package observability provides logging initialization.
package observability

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/stolasapp/elemental/internal/config"
)

// InitSlog initializes a logger with the given config, writing to stderr.
// See [NewLogger].
func InitSlog(cfg *config.Config) *slog.Logger {
	return NewLogger(os.Stderr, term.IsTerminal(int(os.Stdin.Fd())), cfg)
}

// NewLogger returns a logger writing to w. Interactive sessions get a
// human-readable text format; otherwise logs are JSON for collection. Dev
// mode adds source locations. An invalid level falls back to info, since the
// config is validated on load.
func NewLogger(w io.Writer, interactive bool, cfg *config.Config) *slog.Logger {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{
		AddSource: cfg.DevMode,
		Level:     level,
	}
	var handler slog.Handler
	if interactive {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config describes how the process logger is built.
type Config struct {
	Service string
	Version string
	Env     string // e.g. "dev", "prod"
	Level   string // debug, info, warn, error
	Format  string // json (default) or text
}

// New builds the process-wide logger, installs it as the slog default and
// returns it. Every line carries the service identity so aggregated logs
// from multiple deployments stay attributable.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter is New with an explicit sink, for tests.
func NewWithWriter(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: levelFor(cfg.Level),
		// Source locations are only worth the line noise during local dev.
		AddSource: cfg.Env == "dev",
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(h).With(
		slog.String("service", cfg.Service),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
	slog.SetDefault(logger)
	return logger
}

func levelFor(s string) slog.Level {
	switch strings.ToLower(s) {
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

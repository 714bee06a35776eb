package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/clinicacaracas/citas-api/internal/config"
)

type contextKey struct{}

// Setup initializes and configures the application's logging system based on
// the provided configuration and sets the result as the slog default.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit output, used by tests.
func SetupWithWriter(cfg config.ServerConfig, out io.Writer) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.LogLevel)
	if !ok {
		// Use a temporary stderr logger so the warning is visible even if
		// out is redirected.
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Environment == config.EnvDevelopment {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With("service", "citas-api")
	if cfg.Version != "" {
		logger = logger.With("version", cfg.Version)
	}

	slog.SetDefault(logger)
	return logger, nil
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
// Unknown names return slog.LevelInfo and false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if l == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOrDefault(ctx, slog.Default())
}

// FromContextOrDefault returns the logger stored in ctx, or def.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if ctx == nil {
		return def
	}
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return def
}

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/clinicacaracas/citas-api/internal/config"
	"github.com/clinicacaracas/citas-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupWithWriter_JSONOutsideDevelopment(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{
		LogLevel:    "info",
		Environment: config.EnvProduction,
		Version:     "2.0.0",
	}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("hello", "appointment_id", "CITA-1")
	l.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug output should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "CITA-1", entry["appointment_id"])
	assert.Equal(t, "citas-api", entry["service"])
	assert.Equal(t, "2.0.0", entry["version"])

	assert.Same(t, l, slog.Default(), "Setup installs the logger as default")
}

func TestSetupWithWriter_TextInDevelopment(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	l, err := logger.SetupWithWriter(config.ServerConfig{
		LogLevel:    "debug",
		Environment: config.EnvDevelopment,
	}, &buf)
	require.NoError(t, err)

	l.Debug("visible", "k", "v")
	out := buf.String()
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "k=v")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestFromContextOrDefault(t *testing.T) {
	defaultLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	customLogger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
		{
			name:     "nil_logger_is_not_stored",
			ctx:      logger.WithLogger(context.Background(), nil),
			expected: defaultLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, logger.FromContextOrDefault(tt.ctx, defaultLogger))
		})
	}
}

func TestFromContext_FallsBackToSlogDefault(t *testing.T) {
	restoreDefault(t)

	l, _ := logger.GetTestLogger(t)
	slog.SetDefault(l)
	assert.Same(t, l, logger.FromContext(context.Background()))
}

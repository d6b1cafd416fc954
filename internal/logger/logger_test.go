package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"blog-platform/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})
	logger.SetLogger(slog.New(handler))
	return &buf
}

func TestLogger_Info(t *testing.T) {
	buf := newBufferLogger(slog.LevelInfo)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "42")
}

func TestLogger_Error(t *testing.T) {
	buf := newBufferLogger(slog.LevelError)

	logger.Error("error occurred", slog.String("error", "test error"))
	logger.Info("dropped")

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
	assert.NotContains(t, output, "dropped")
}

func TestLogger_WithRequestID(t *testing.T) {
	buf := newBufferLogger(slog.LevelInfo)

	logger.WithRequestID("req-123").Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_WithUserID(t *testing.T) {
	buf := newBufferLogger(slog.LevelInfo)

	logger.WithUserID("user-456").Info("comment created")

	output := buf.String()
	assert.Contains(t, output, "comment created")
	assert.Contains(t, output, "user_id")
	assert.Contains(t, output, "user-456")
}

func TestLogger_InfoContext(t *testing.T) {
	buf := newBufferLogger(slog.LevelInfo)

	logger.InfoContext(context.Background(), "context message", slog.String("key", "value"))

	assert.Contains(t, buf.String(), "context message")
}

func TestLogger_WithFields(t *testing.T) {
	buf := newBufferLogger(slog.LevelInfo)

	logger.WithFields(
		slog.String("service", "comments"),
		slog.Int("roots", 3),
	).Info("tree built")

	output := buf.String()
	assert.Contains(t, output, "tree built")
	assert.Contains(t, output, "comments")
	assert.Contains(t, output, "roots")
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer

	lg := logger.Setup(&buf, "text", "warn")
	require.NotNil(t, lg)
	assert.Equal(t, lg, logger.Default())

	logger.Info("hidden")
	logger.Warn("shown")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "level=WARN")
	assert.Contains(t, output, "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

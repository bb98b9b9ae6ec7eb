package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/kami8ma8810/next-architecture-learning/internal/config"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })
}

func TestSetupWithWriterLevels(t *testing.T) {
	restoreDefault(t)

	buf := &logger.TestLogBuffer{}
	l := logger.SetupWithWriter(config.LogConfig{Level: "warn"}, buf)

	l.Info("hidden")
	l.Warn("shown", slog.String("component", "test"))

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
	assert.Equal(t, "test", entries[0]["component"])
	assert.Same(t, l, slog.Default())
}

func TestSetupWithWriterInvalidLevel(t *testing.T) {
	restoreDefault(t)

	buf := &logger.TestLogBuffer{}
	l := logger.SetupWithWriter(config.LogConfig{Level: "loud"}, buf)
	l.Debug("hidden")

	logger.AssertLogContains(t, buf, "invalid log level configured")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, ok := logger.ParseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, ok = logger.ParseLevel("")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	l, buf := logger.GetTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx))
	assert.Same(t, l, logger.FromContextOrDefault(ctx, nil))

	other, _ := logger.GetTestLogger(t)
	assert.Same(t, other, logger.FromContextOrDefault(context.Background(), other))
	assert.NotNil(t, logger.FromContext(context.Background()))

	traced := logger.WithTraceID(context.Background(), "trace-123")
	assert.Equal(t, "trace-123", logger.TraceID(traced))
	assert.Equal(t, "", logger.TraceID(context.Background()))

	logger.FromContext(ctx).Info("hello")
	logger.AssertLogContains(t, buf, "hello")
}

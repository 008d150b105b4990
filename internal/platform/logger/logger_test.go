package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/sercanumit/bootcamp-112/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupLevels(t *testing.T) {
	restoreDefault(t)

	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"WARN", false, false},
		{"error", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &logger.LogBuffer{}
			l, err := logger.Setup(logger.LoggerConfig{Level: tt.level, Output: buf})
			require.NoError(t, err)
			require.NotNil(t, l)

			l.Debug("debug message")
			l.Info("info message")

			_, debugSeen := buf.Find(t, "debug message")
			_, infoSeen := buf.Find(t, "info message")
			assert.Equal(t, tt.debugSeen, debugSeen)
			assert.Equal(t, tt.infoSeen, infoSeen)
		})
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	restoreDefault(t)

	buf := &logger.LogBuffer{}
	l, err := logger.Setup(logger.LoggerConfig{Level: "verbose", Output: buf})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "invalid log level configured")
	l.Info("still logging")

	entries := buf.Entries(t)
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[1][slog.LevelKey])
}

func TestSetupSetsDefault(t *testing.T) {
	restoreDefault(t)

	buf := &logger.LogBuffer{}
	_, err := logger.Setup(logger.LoggerConfig{Level: "info", Output: buf})
	require.NoError(t, err)

	slog.Info("via default", "component", "analysis")
	entry, ok := buf.Find(t, "via default")
	require.True(t, ok)
	assert.Equal(t, "analysis", entry["component"])
}

func TestContextLogger(t *testing.T) {
	assert.Nil(t, logger.FromContext(context.Background()))
	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))

	_, fallback := logger.NewTestLogger(t)
	assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))

	buf, l := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l.With("trace_id", "abc"))

	logger.FromContextOrDefault(ctx, fallback).Info("scoped")
	entry, ok := buf.Find(t, "scoped")
	require.True(t, ok)
	assert.Equal(t, "abc", entry["trace_id"])
}

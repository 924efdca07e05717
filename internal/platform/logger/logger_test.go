package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/bridgepath-ai/gateway/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		got, ok := logger.ParseLevel(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.wantOK, ok, tc.in)
	}
}

// Setup replaces slog.Default, so these subtests run sequentially.
func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	t.Run("filters below configured level", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.Setup(logger.LoggerConfig{Level: "warn", Output: buf})
		require.NoError(t, err)

		l.Info("dropped")
		l.Warn("kept", "operation", "pitch_analysis")

		entries, err := buf.GetLogEntries()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "kept", entries[0]["msg"])
		assert.Equal(t, "pitch_analysis", entries[0]["operation"])
		assert.Same(t, l, slog.Default())
	})

	t.Run("invalid level warns and uses info", func(t *testing.T) {
		buf := &logger.TestLogBuffer{}
		l, err := logger.Setup(logger.LoggerConfig{Level: "loud", Output: buf})
		require.NoError(t, err)

		l.Debug("dropped")
		warnings := logger.FindEntries(t, buf, "invalid log level configured, using default level")
		require.Len(t, warnings, 1)
		assert.Equal(t, "loud", warnings[0]["configured_level"])
		assert.Len(t, logger.FindEntries(t, buf, "dropped"), 0)
	})
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	l, _ := logger.NewTestLogger(t)
	ctx := logger.WithLogger(context.Background(), l)

	assert.Same(t, l, logger.FromContext(ctx))
	assert.Nil(t, logger.FromContext(context.Background()))

	def, _ := logger.NewTestLogger(t)
	assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))
	assert.Same(t, l, logger.FromContextOrDefault(ctx, def))
	assert.NotNil(t, logger.FromContextOrDefault(context.Background(), nil))
}

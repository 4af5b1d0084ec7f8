package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/osteria-purchase-ledger/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{"DebugLevel", "debug", slog.LevelDebug},
		{"InfoLevel", "info", slog.LevelInfo},
		{"WarnLevel", "warn", slog.LevelWarn},
		{"WarningAlias", "WARNING", slog.LevelWarn},
		{"ErrorLevel", "error", slog.LevelError},
		{"DefaultToInfo", "unknown", slog.LevelInfo},
		{"EmptyToInfo", "", slog.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseLevel(tc.logLevel))
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("TagsApplication", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{
			Application: config.ApplicationConfig{Name: "purchase-ledger", Env: "test"},
			Logging:     config.LoggingConfig{Level: "info"},
		}

		logger := New(&buf, cfg)
		require.NotNil(t, logger)
		logger.Info("entry accepted")

		out := buf.String()
		assert.Contains(t, out, `"msg":"logger initialized"`)
		assert.Contains(t, out, `"msg":"entry accepted"`)
		assert.Contains(t, out, `"app":"purchase-ledger"`)
		assert.Contains(t, out, `"env":"test"`)
	})

	t.Run("RespectsLevel", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{Logging: config.LoggingConfig{Level: "error"}}

		logger := New(&buf, cfg)
		logger.Warn("hidden")

		assert.False(t, logger.Enabled(context.Background(), slog.LevelWarn))
		assert.True(t, logger.Enabled(context.Background(), slog.LevelError))
		assert.Empty(t, buf.String(), "init message is logged at info and filtered out")
	})

	t.Run("DebugAddsSource", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{Logging: config.LoggingConfig{Level: "debug"}}

		logger := New(&buf, cfg)
		logger.Debug("details")

		assert.Contains(t, buf.String(), `"source":`)
	})
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&config.Config{Logging: config.LoggingConfig{Level: "warn"}})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelWarn))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

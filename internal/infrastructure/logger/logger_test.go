package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates console logger", func(t *testing.T) {
		log, err := New(DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, log)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("creates json logger", func(t *testing.T) {
		log, err := New(ProductionConfig())
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("honors debug level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = "debug"

		log, err := New(cfg)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Level = "loud"

		log, err := New(cfg)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		log, err := NewForEnvironment(env)
		require.NoError(t, err, "env %q", env)
		require.NotNil(t, log)
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARNING"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nope"))
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
}

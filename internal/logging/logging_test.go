package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfig(t *testing.T) {
	t.Run("quiet by default", func(t *testing.T) {
		cfg := Config(false)
		assert.Equal(t, zapcore.WarnLevel, cfg.Level.Level())
		assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
		assert.True(t, cfg.DisableStacktrace)
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		cfg := Config(true)
		assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
		assert.False(t, cfg.DisableStacktrace)
	})
}

func TestNew(t *testing.T) {
	log, err := New(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = New(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		ctx := WithContext(context.Background(), zap.New(core))

		FromContext(ctx).Info("hello")
		assert.Equal(t, 1, logs.FilterMessage("hello").Len())
	})

	t.Run("missing logger falls back to nop", func(t *testing.T) {
		log := FromContext(context.Background())
		require.NotNil(t, log)
		assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
	})
}

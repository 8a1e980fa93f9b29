package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/hamzaelsherif03/Calculator/config"
)

func TestNewFallsBackToInfo(t *testing.T) {
	t.Parallel()

	log, err := New(config.LogConfig{Level: "nonsense"})
	assert.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWritesConfiguredFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calc.log")
	log, err := New(config.LogConfig{Level: "debug", File: path})
	assert.NoError(t, err)

	log.Info("ladder rebuilt")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "ladder rebuilt")
}

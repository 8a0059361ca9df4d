package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerNeverNilBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic even though Initialize has not run.
	Logger.Debugw("pre-init message", "key", "value")
}

func TestInitializeCreatesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hsctui.log")

	require.NoError(t, Initialize(path, true))
	Logger.Infow("hello", "widget", "battery")
	require.NoError(t, Logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "battery")
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, levelFor(true))
	assert.Equal(t, zapcore.InfoLevel, levelFor(false))
}

func TestDefaultLogPathIsAbsolute(t *testing.T) {
	assert.True(t, filepath.IsAbs(DefaultLogPath()))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerIsSafeBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)
	// Must not panic.
	Logger.Debugw("pre-init message", "key", "value")
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestSetDebug(t *testing.T) {
	require.NoError(t, Initialize(false))

	SetDebug(true)
	assert.True(t, level.Enabled(zap.DebugLevel))

	SetDebug(false)
	assert.False(t, level.Enabled(zap.DebugLevel))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	l, err := New("")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = New("verbose")
	assert.Error(t, err)
}

func TestMustPanicsOnError(t *testing.T) {
	assert.Panics(t, func() { Must(New("verbose")) })
	assert.NotPanics(t, func() { Must(New("warn")) })
}

func TestNamedNilBase(t *testing.T) {
	assert.NotNil(t, Named(nil, "x"))
	assert.NotNil(t, Named(zap.NewNop(), "x"))
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel(LevelInfo) })

	SetLevel("DEBUG")
	assert.Equal(t, zapcore.DebugLevel, Level())

	SetLevel(" warn ")
	assert.Equal(t, zapcore.WarnLevel, Level())

	SetLevel("error")
	assert.Equal(t, zapcore.ErrorLevel, Level())

	SetLevel("verbose")
	assert.Equal(t, zapcore.InfoLevel, Level())
}

func TestNamedAndNop(t *testing.T) {
	assert.NotNil(t, Named("quiz"))
	assert.NotPanics(t, func() { Nop().Infow("discarded", "k", "v") })
}

package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimingEnabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	done := Timing(logger, true, "normalize")
	done()

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "Starting: normalize", entries[0].Message)
	assert.Equal(t, "Completed", entries[1].Message)
	assert.Equal(t, "normalize", entries[1].ContextMap()["operation"])
}

func TestTimingDisabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	Timing(zap.New(core), false, "normalize")()
	DebugOutput(zap.New(core), false, "hidden %d", 1)

	assert.Zero(t, logs.Len())
}

package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestNew(t *testing.T) {
	l, err := New("debug", "console")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New("warn", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New("loud", "json")
	assert.Error(t, err)
	_, err = New("info", "xml")
	assert.Error(t, err)
}

func TestLogError(t *testing.T) {
	logger, logs := observed()
	LogError(logger, "conversion failed", errors.New("bad checksum"), zap.String("op", "to-evm"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "bad checksum", entry.ContextMap()["error"])
	assert.Equal(t, "to-evm", entry.ContextMap()["op"])
}

func TestLogOperation_SkipsZeroDuration(t *testing.T) {
	logger, logs := observed()
	LogOperation(logger, "dataset_generated", zap.Duration("duration", 0), zap.Int("samples", 21))

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.NotContains(t, ctx, "duration")
	assert.EqualValues(t, 21, ctx["samples"])
}

func TestLogHTTPRequest(t *testing.T) {
	logger, logs := observed()
	LogHTTPRequest(logger, "GET", "/healthz", 200, 15, 1500*time.Microsecond)

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "GET", ctx["method"])
	assert.EqualValues(t, 200, ctx["status"])
	assert.InDelta(t, 1.5, ctx["duration_ms"], 0.001)
}

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestSafeCloseWithLogging(t *testing.T) {
	logger, logs := observed()
	SafeCloseWithLogging(failingCloser{}, logger, "export")
	SafeCloseWithLogging(nil, logger, "noop")
	assert.Equal(t, 1, logs.FilterMessage("failed to close resource").Len())
}

func TestContextLogger(t *testing.T) {
	logger, _ := observed()
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestNilLoggerIsSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, "x", errors.New("y"))
		LogOperation(nil, "x")
		LogHTTPRequest(nil, "GET", "/", 200, 0, 0)
	})
}

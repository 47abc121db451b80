package crypto

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_SelfTestPasses(t *testing.T) {
	g := NewGate()
	assert.False(t, g.Ready())
	assert.NoError(t, g.Err())

	require.NoError(t, g.WaitReady(context.Background()))
	assert.True(t, g.Ready())
	assert.NoError(t, g.WaitReady(context.Background()))
}

func TestGate_FailureIsSticky(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	g := newGate(func() error { calls++; return boom })

	assert.ErrorIs(t, g.WaitReady(context.Background()), boom)
	assert.ErrorIs(t, g.WaitReady(context.Background()), boom)
	assert.False(t, g.Ready())
	assert.ErrorIs(t, g.Err(), boom)
	assert.Equal(t, 1, calls)
}

func TestGate_ContextCancel(t *testing.T) {
	release := make(chan struct{})
	g := newGate(func() error { <-release; return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, g.WaitReady(ctx), context.DeadlineExceeded)
	assert.False(t, g.Ready())

	close(release)
	require.NoError(t, g.WaitReady(context.Background()))
	assert.True(t, g.Ready())
}

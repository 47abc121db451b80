package crypto

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Known-good vector: the well-known development account under prefix 42.
const (
	selfTestKey     = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	selfTestAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
)

var ErrSelfTest = errors.New("address primitives self test failed")

// Gate runs the one-time initialization of the address primitives and
// reports when they can be used.
type Gate struct {
	once  sync.Once
	done  chan struct{}
	ready atomic.Bool
	err   error
	check func() error
}

// NewGate returns a gate that self-tests the primitives on first use.
func NewGate() *Gate { return newGate(selfTest) }

func newGate(check func() error) *Gate {
	return &Gate{done: make(chan struct{}), check: check}
}

// WaitReady starts initialization if needed and blocks until it finishes or
// ctx ends. Every call after completion returns the first result.
func (g *Gate) WaitReady(ctx context.Context) error {
	g.once.Do(func() {
		go func() {
			err := g.check()
			g.err = err
			if err == nil {
				g.ready.Store(true)
			}
			close(g.done)
		}()
	})
	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ready reports whether initialization succeeded.
func (g *Gate) Ready() bool { return g.ready.Load() }

// Err returns the initialization error, or nil while still pending.
func (g *Gate) Err() error {
	select {
	case <-g.done:
		return g.err
	default:
		return nil
	}
}

// Done is closed once initialization has finished.
func (g *Gate) Done() <-chan struct{} { return g.done }

func selfTest() error {
	key, err := FromHex(selfTestKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTest, err)
	}
	addr, err := EncodeAddress(key, 42)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTest, err)
	}
	if addr != selfTestAddress {
		return fmt.Errorf("%w: encode mismatch", ErrSelfTest)
	}
	format, back, err := DecodeAddress(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTest, err)
	}
	if format != 42 || ToHex(back) != selfTestKey {
		return fmt.Errorf("%w: decode mismatch", ErrSelfTest)
	}
	if _, err := EVMToAddress(ToHex(key[:EVMAddressBytes]), 42); err != nil {
		return fmt.Errorf("%w: %v", ErrSelfTest, err)
	}
	return nil
}

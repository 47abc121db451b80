package converter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"techangel/internal/crypto"
	"techangel/internal/services/converter"
)

const (
	aliceSS58 = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	aliceKey  = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceEVM  = "0xd43593c715fdd31c61141abd04a99fd6822c8558"
)

// stubGate is a readiness gate frozen in one state.
type stubGate struct {
	ready bool
	err   error
}

func (g stubGate) WaitReady(context.Context) error { return g.err }
func (g stubGate) Ready() bool                     { return g.ready }
func (g stubGate) Err() error                      { return g.err }

func readyService(t *testing.T) *converter.Service {
	t.Helper()
	gate := crypto.NewGate()
	require.NoError(t, gate.WaitReady(context.Background()))
	return converter.New(crypto.Codec{}, gate, nil)
}

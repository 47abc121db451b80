package converter

import (
	"context"
	"errors"

	"techangel/internal/crypto"
	"techangel/internal/domain"
)

// User-facing messages shown by the Converter View.
const (
	MsgInitFailed   = "Failed to initialize Polkadot crypto libraries"
	MsgNotReady     = "Crypto not ready yet, try again."
	MsgMissingSS58  = "Enter a Polkadot/Substrate address"
	MsgInvalidSS58  = "Invalid Polkadot/Substrate address"
	MsgMissingEVM   = "Enter an Ethereum 0x address"
	MsgMalformedEVM = "Invalid Ethereum (0x) address"
	MsgInvalidEVM   = "Invalid Ethereum address"
)

// View is the state of one converter screen.
type View struct {
	svc    domain.ConverterService
	format domain.SS58Format

	PolkaInput  string
	EthInput    string
	EthOutput   string
	PolkaOutput string
	PublicKey   string
	Error       string
	Ready       bool
}

// NewView returns a view that converts through svc. format is the network
// prefix used for EVM -> SS58.
func NewView(svc domain.ConverterService, format domain.SS58Format) *View {
	return &View{svc: svc, format: format, Ready: svc.Ready()}
}

// Format returns the network prefix used for EVM -> SS58.
func (v *View) Format() domain.SS58Format { return v.format }

// SetReady is called once the readiness gate resolves.
func (v *View) SetReady(err error) {
	if err != nil {
		v.Ready = false
		v.Error = MsgInitFailed
		return
	}
	v.Ready = true
}

// PolkaToEth converts PolkaInput into EthOutput and PublicKey.
func (v *View) PolkaToEth(ctx context.Context) {
	v.Error = ""
	if !v.Ready {
		v.Error = MsgNotReady
		return
	}

	res, err := v.svc.ToEVM(ctx, v.PolkaInput)
	switch {
	case err == nil:
		v.EthOutput = string(res.EVM)
		v.PublicKey = crypto.ToHex(res.PublicKey)
	case errors.Is(err, ErrMissingInput):
		v.Error = MsgMissingSS58
	case errors.Is(err, ErrNotReady), errors.Is(err, ErrInitFailed):
		v.Error = MsgNotReady
	default:
		v.Error = MsgInvalidSS58
		v.EthOutput = ""
		v.PublicKey = ""
	}
}

// EthToPolka converts EthInput into PolkaOutput and PublicKey.
func (v *View) EthToPolka(ctx context.Context) {
	v.Error = ""
	if !v.Ready {
		v.Error = MsgNotReady
		return
	}

	res, err := v.svc.ToSS58(ctx, v.EthInput, v.format)
	switch {
	case err == nil:
		v.PolkaOutput = string(res.SS58)
		v.PublicKey = crypto.ToHex(res.PublicKey)
	case errors.Is(err, ErrMissingInput):
		v.Error = MsgMissingEVM
	case errors.Is(err, ErrNotReady), errors.Is(err, ErrInitFailed):
		v.Error = MsgNotReady
	case errors.Is(err, ErrMalformedEVM):
		v.Error = MsgMalformedEVM
		v.PolkaOutput = ""
		v.PublicKey = ""
	default:
		v.Error = MsgInvalidEVM
		v.PolkaOutput = ""
		v.PublicKey = ""
	}
}

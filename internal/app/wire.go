package app

import (
	"context"
	"math/rand/v2"
	"sync/atomic"

	"go.uber.org/zap"

	"techangel/internal/crypto"
	"techangel/internal/domain"
	"techangel/internal/logging"
	"techangel/internal/services/converter"
	"techangel/internal/services/regression"
)

// Wire bundles all services for the front-ends.
type Wire struct {
	Config     *Config
	Log        *zap.Logger
	Gate       *crypto.Gate
	Converter  *converter.Service
	Regression *regression.Service
}

// NewWire constructs the dependency graph from cfg. A nil log builds one from
// cfg.Log.
func NewWire(cfg *Config, log *zap.Logger) (*Wire, error) {
	if log == nil {
		l, err := logging.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return nil, err
		}
		log = l
	}

	gate := crypto.NewGate()
	regSvc, err := regression.New(log)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Config:     cfg,
		Log:        log,
		Gate:       gate,
		Converter:  converter.New(crypto.Codec{}, gate, log),
		Regression: regSvc,
	}, nil
}

// WaitReady waits for the crypto gate, bounded by the configured timeout.
func (w *Wire) WaitReady(ctx context.Context) error {
	timeout, err := w.Config.GetReadyTimeout()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := w.Gate.WaitReady(ctx); err != nil {
		logging.LogError(w.Log, "crypto initialization failed", err)
		return err
	}
	logging.LogOperation(w.Log, "crypto ready")
	return nil
}

// SeedSource returns a dataset seed supplier for one regression view.
// Every call starts over, so a configured seed pins each new view to the
// same dataset; only Regenerate advances past it.
func (w *Wire) SeedSource() func() uint64 {
	if w.Config.Seed == 0 {
		return rand.Uint64
	}
	var next atomic.Uint64
	next.Store(w.Config.Seed)
	return func() uint64 { return next.Add(1) - 1 }
}

// NewConverterView returns a Converter View using the configured prefix.
func (w *Wire) NewConverterView() *converter.View {
	return converter.NewView(w.Converter, domain.SS58Format(w.Config.SS58Format))
}

// NewRegressionView returns a Regression View with a fresh dataset.
func (w *Wire) NewRegressionView() *regression.View {
	return regression.NewView(w.Regression, w.SeedSource())
}

package commands

import (
	"context"

	"techangel/internal/app"
	"techangel/internal/client"
	"techangel/internal/domain"
	"techangel/internal/services/regression"
)

// backend is what the address and regression commands need, served either
// by the local services or by a remote web UI.
type backend interface {
	ToEVM(ctx context.Context, address string) (domain.EVMConversion, error)
	ToSS58(ctx context.Context, address string, format *domain.SS58Format) (domain.SS58Conversion, error)
	Decode(ctx context.Context, address string) (domain.DecodedAddress, error)
	Models(ctx context.Context) ([]domain.ModelInfo, error)
	Predict(ctx context.Context, model domain.ModelName, seed uint64) (domain.PredictResponse, error)
}

var _ backend = (*client.HTTP)(nil)

// localBackend waits for the crypto gate inline, bounded by the configured
// ready timeout.
type localBackend struct{ w *app.Wire }

func (b localBackend) ToEVM(ctx context.Context, address string) (domain.EVMConversion, error) {
	if err := b.w.WaitReady(ctx); err != nil {
		return domain.EVMConversion{}, err
	}
	return b.w.Converter.ToEVM(ctx, address)
}

func (b localBackend) ToSS58(ctx context.Context, address string, format *domain.SS58Format) (domain.SS58Conversion, error) {
	if err := b.w.WaitReady(ctx); err != nil {
		return domain.SS58Conversion{}, err
	}
	f := domain.SS58Format(b.w.Config.SS58Format)
	if format != nil {
		f = *format
	}
	return b.w.Converter.ToSS58(ctx, address, f)
}

func (b localBackend) Decode(ctx context.Context, address string) (domain.DecodedAddress, error) {
	if err := b.w.WaitReady(ctx); err != nil {
		return domain.DecodedAddress{}, err
	}
	return b.w.Converter.Decode(ctx, address)
}

func (b localBackend) Models(ctx context.Context) ([]domain.ModelInfo, error) {
	return b.w.Regression.Models(), nil
}

func (b localBackend) Predict(ctx context.Context, model domain.ModelName, seed uint64) (domain.PredictResponse, error) {
	name, err := regression.ParseModel(string(model))
	if err != nil {
		return domain.PredictResponse{}, err
	}
	samples := b.w.Regression.Dataset(seed)
	preds, err := b.w.Regression.Predict(name, samples)
	if err != nil {
		return domain.PredictResponse{}, err
	}
	score, err := b.w.Regression.Score(name, samples)
	if err != nil {
		return domain.PredictResponse{}, err
	}
	return domain.PredictResponse{Seed: seed, Model: name, Predictions: preds, Score: score}, nil
}

package interfaces

import (
	"context"

	types "techangel/internal/domain/types"
)

// AddressCodec is the address collaborator: SS58 and H160 derivation.
type AddressCodec interface {
	DecodeAddress(address string) (format types.SS58Format, key []byte, err error)
	EncodeAddress(key []byte, format types.SS58Format) (string, error)
	AddressToEVM(address string) ([]byte, error)
	EVMToAddress(evm string, format types.SS58Format) (string, error)
}

// ReadinessGate reports whether the address collaborator finished its
// one-time initialization.
type ReadinessGate interface {
	WaitReady(ctx context.Context) error
	Ready() bool
	Err() error
}

// ConverterService converts between SS58 and H160 addresses.
type ConverterService interface {
	Ready() bool
	ToEVM(ctx context.Context, address string) (types.EVMConversion, error)
	ToSS58(ctx context.Context, address string, format types.SS58Format) (types.SS58Conversion, error)
	Decode(ctx context.Context, address string) (types.DecodedAddress, error)
}

// RegressionService serves the regression demo's datasets and curves.
type RegressionService interface {
	Dataset(seed uint64) []types.Sample
	Models() []types.ModelInfo
	Info(name types.ModelName) (types.ModelInfo, error)
	Predict(name types.ModelName, samples []types.Sample) ([]types.Prediction, error)
	Score(name types.ModelName, samples []types.Sample) (types.ModelScore, error)
}

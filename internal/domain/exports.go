package domain

import (
	interfaces "techangel/internal/domain/interfaces"
	types "techangel/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	SS58Address    = types.SS58Address
	EVMAddress     = types.EVMAddress
	SS58Format     = types.SS58Format
	PublicKey      = types.PublicKey
	EVMConversion  = types.EVMConversion
	SS58Conversion = types.SS58Conversion
	DecodedAddress = types.DecodedAddress
	Sample         = types.Sample
	Prediction     = types.Prediction
	ModelName      = types.ModelName
	ModelInfo      = types.ModelInfo
	ModelScore     = types.ModelScore

	AddressRequest  = types.AddressRequest
	DatasetResponse = types.DatasetResponse
	PredictResponse = types.PredictResponse
	Health          = types.Health
	ErrorResponse   = types.ErrorResponse
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AddressCodec      = interfaces.AddressCodec
	ReadinessGate     = interfaces.ReadinessGate
	ConverterService  = interfaces.ConverterService
	RegressionService = interfaces.RegressionService
)

// Re-exported constants.
const (
	DefaultSS58Format = types.DefaultSS58Format

	ModelLinear        = types.ModelLinear
	ModelPolynomial    = types.ModelPolynomial
	ModelDecisionTree  = types.ModelDecisionTree
	ModelNeuralNetwork = types.ModelNeuralNetwork
)

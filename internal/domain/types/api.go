package types

// AddressRequest is the body of the address conversion endpoints. Format
// applies to H160 -> SS58 only; nil means the server default.
type AddressRequest struct {
	Address string      `json:"address"`
	Format  *SS58Format `json:"ss58_format,omitempty"`
}

// DatasetResponse is one synthetic dataset and the seed that produced it.
type DatasetResponse struct {
	Seed    uint64   `json:"seed"`
	Samples []Sample `json:"samples"`
}

// PredictResponse is one model evaluated against a seeded dataset.
type PredictResponse struct {
	Seed        uint64       `json:"seed"`
	Model       ModelName    `json:"model"`
	Predictions []Prediction `json:"predictions"`
	Score       ModelScore   `json:"score"`
}

// Health reports readiness of the address collaborator.
type Health struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

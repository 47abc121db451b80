package types

// ModelName identifies one of the fixed regression curves.
type ModelName string

const (
	ModelLinear        ModelName = "linear"
	ModelPolynomial    ModelName = "polynomial"
	ModelDecisionTree  ModelName = "decision_tree"
	ModelNeuralNetwork ModelName = "neural_network"
)

// String returns the string form of the model name.
func (m ModelName) String() string { return string(m) }

// Sample is one synthetic observation: years of experience and salary.
type Sample struct {
	Experience int     `json:"experience"`
	Actual     float64 `json:"actual"`
}

// Prediction pairs a sample with the value a model gives for it.
type Prediction struct {
	Experience int     `json:"experience"`
	Actual     float64 `json:"actual"`
	Predicted  float64 `json:"predicted"`
}

// ModelInfo is the static description shown next to a curve.
type ModelInfo struct {
	Name     ModelName `json:"name" yaml:"name"`
	Title    string    `json:"title" yaml:"title"`
	Summary  string    `json:"summary" yaml:"summary"`
	Equation string    `json:"equation" yaml:"equation"`
	Details  string    `json:"details" yaml:"details"`
	Pros     []string  `json:"pros" yaml:"pros"`
	Cons     []string  `json:"cons" yaml:"cons"`
}

// ModelScore reports how well a fixed curve matches a dataset.
type ModelScore struct {
	Model ModelName `json:"model"`
	MAE   float64   `json:"mae"`
	RMSE  float64   `json:"rmse"`
	R2    float64   `json:"r2"`
}

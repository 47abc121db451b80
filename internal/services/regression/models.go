package regression

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"techangel/internal/domain"
)

var ErrUnknownModel = errors.New("unknown model")

// order is the display order of the models.
var order = []domain.ModelName{
	domain.ModelLinear,
	domain.ModelPolynomial,
	domain.ModelDecisionTree,
	domain.ModelNeuralNetwork,
}

// Names returns the model names in display order.
func Names() []domain.ModelName { return append([]domain.ModelName(nil), order...) }

// band is one leaf of the decision tree: experience below Upper predicts Value.
type band struct {
	Upper float64
	Value float64
}

var salaryBands = []band{
	{Upper: 3, Value: 36000},
	{Upper: 7, Value: 50000},
	{Upper: 12, Value: 68000},
	{Upper: 16, Value: 88000},
	{Upper: math.Inf(1), Value: 104000},
}

var curves = map[domain.ModelName]func(x float64) float64{
	domain.ModelLinear: func(x float64) float64 {
		return 32000 + 4300*x
	},
	domain.ModelPolynomial: func(x float64) float64 {
		return 30500 + 3400*x + 48*x*x
	},
	domain.ModelDecisionTree: func(x float64) float64 {
		for _, b := range salaryBands {
			if x < b.Upper {
				return b.Value
			}
		}
		return salaryBands[len(salaryBands)-1].Value
	},
	domain.ModelNeuralNetwork: func(x float64) float64 {
		return 30000 + 4100*x + 3200*math.Sin(x/2.5)
	},
}

// ParseModel resolves a model name, accepting a few short aliases.
func ParseModel(s string) (domain.ModelName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lin":
		return domain.ModelLinear, nil
	case "polynomial", "poly":
		return domain.ModelPolynomial, nil
	case "decision_tree", "decision-tree", "tree":
		return domain.ModelDecisionTree, nil
	case "neural_network", "neural-network", "nn":
		return domain.ModelNeuralNetwork, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// Evaluate returns the model's prediction at x years of experience.
func Evaluate(name domain.ModelName, x float64) (float64, error) {
	f, ok := curves[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return f(x), nil
}

// Predict pairs every sample with the model's value for it.
func Predict(name domain.ModelName, samples []domain.Sample) ([]domain.Prediction, error) {
	f, ok := curves[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	out := make([]domain.Prediction, len(samples))
	for i, s := range samples {
		out[i] = domain.Prediction{
			Experience: s.Experience,
			Actual:     s.Actual,
			Predicted:  f(float64(s.Experience)),
		}
	}
	return out, nil
}

// Score measures how far the model's curve sits from the samples.
func Score(name domain.ModelName, samples []domain.Sample) (domain.ModelScore, error) {
	preds, err := Predict(name, samples)
	if err != nil {
		return domain.ModelScore{}, err
	}
	score := domain.ModelScore{Model: name}
	if len(preds) == 0 {
		return score, nil
	}

	var mean float64
	for _, p := range preds {
		mean += p.Actual
	}
	mean /= float64(len(preds))

	var absSum, resSS, totSS float64
	for _, p := range preds {
		r := p.Actual - p.Predicted
		absSum += math.Abs(r)
		resSS += r * r
		d := p.Actual - mean
		totSS += d * d
	}
	n := float64(len(preds))
	score.MAE = absSum / n
	score.RMSE = math.Sqrt(resSS / n)
	if totSS > 0 {
		score.R2 = 1 - resSS/totSS
	}
	return score, nil
}

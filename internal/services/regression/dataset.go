package regression

import (
	"math/rand/v2"

	"techangel/internal/domain"
)

const (
	// MaxExperience is the last sample's years of experience; samples run 0..MaxExperience.
	MaxExperience = 20
	// NoiseAmplitude bounds the uniform noise added to each sample.
	NoiseAmplitude = 6000.0
)

// trend is the curve the synthetic data is drawn around.
func trend(x float64) float64 { return 30000 + 3500*x + 45*x*x }

// Generate draws one sample per year of experience from rng.
func Generate(rng *rand.Rand) []domain.Sample {
	out := make([]domain.Sample, 0, MaxExperience+1)
	for x := 0; x <= MaxExperience; x++ {
		noise := (rng.Float64()*2 - 1) * NoiseAmplitude
		out = append(out, domain.Sample{Experience: x, Actual: trend(float64(x)) + noise})
	}
	return out
}

// newRand returns a deterministic generator for seed.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

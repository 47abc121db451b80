package regression

import (
	"math/rand/v2"

	"techangel/internal/domain"
)

// Snapshot is everything one render of the view needs, taken in one step so
// the curve and the description always belong to the same model.
type Snapshot struct {
	Samples     []domain.Sample
	Selected    domain.ModelName
	Info        domain.ModelInfo
	Curve       []domain.Prediction
	Score       domain.ModelScore
	ShowDetails bool
	Seed        uint64
}

// View is the state of one regression screen.
type View struct {
	svc      domain.RegressionService
	nextSeed func() uint64

	seed     uint64
	samples  []domain.Sample
	selected domain.ModelName
	details  bool
}

// NewView builds a view with a fresh dataset. nextSeed supplies the seed for
// each dataset; nil uses a random one.
func NewView(svc domain.RegressionService, nextSeed func() uint64) *View {
	if nextSeed == nil {
		nextSeed = rand.Uint64
	}
	v := &View{svc: svc, nextSeed: nextSeed, selected: domain.ModelLinear}
	v.Regenerate()
	return v
}

// SelectModel switches the active model. Unknown names leave the view as is.
func (v *View) SelectModel(name domain.ModelName) error {
	if _, err := v.svc.Info(name); err != nil {
		return err
	}
	v.selected = name
	return nil
}

// ToggleDetails shows or hides the details panel.
func (v *View) ToggleDetails() { v.details = !v.details }

// Regenerate replaces the dataset with a fresh draw.
func (v *View) Regenerate() {
	v.seed = v.nextSeed()
	v.samples = v.svc.Dataset(v.seed)
}

func (v *View) Selected() domain.ModelName { return v.selected }
func (v *View) ShowDetails() bool          { return v.details }
func (v *View) Seed() uint64               { return v.seed }

// Samples returns a copy of the current dataset.
func (v *View) Samples() []domain.Sample {
	return append([]domain.Sample(nil), v.samples...)
}

// Snapshot evaluates the selected model against the current dataset.
func (v *View) Snapshot() Snapshot {
	// selected is always a known model, so these cannot fail.
	info, _ := v.svc.Info(v.selected)
	curve, _ := v.svc.Predict(v.selected, v.samples)
	score, _ := v.svc.Score(v.selected, v.samples)
	return Snapshot{
		Samples:     v.Samples(),
		Selected:    v.selected,
		Info:        info,
		Curve:       curve,
		Score:       score,
		ShowDetails: v.details,
		Seed:        v.seed,
	}
}

// Curve is the selected model's prediction for each sample.
func (v *View) Curve() []domain.Prediction {
	curve, _ := v.svc.Predict(v.selected, v.samples)
	return curve
}

// Description is the catalog entry of the selected model.
func (v *View) Description() domain.ModelInfo {
	info, _ := v.svc.Info(v.selected)
	return info
}

// Score rates the selected model against the current dataset.
func (v *View) Score() domain.ModelScore {
	score, _ := v.svc.Score(v.selected, v.samples)
	return score
}

// Curves evaluates every model against the current dataset, in display order.
func (v *View) Curves() map[domain.ModelName][]domain.Prediction {
	out := make(map[domain.ModelName][]domain.Prediction, len(order))
	for _, name := range order {
		out[name], _ = v.svc.Predict(name, v.samples)
	}
	return out
}

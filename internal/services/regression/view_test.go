package regression_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techangel/internal/domain"
	"techangel/internal/services/regression"
)

func counter() func() uint64 {
	var n uint64
	return func() uint64 { n++; return n }
}

func newView(t *testing.T) *regression.View {
	t.Helper()
	svc, err := regression.New(nil)
	require.NoError(t, err)
	return regression.NewView(svc, counter())
}

func TestView_Defaults(t *testing.T) {
	v := newView(t)
	snap := v.Snapshot()
	assert.Equal(t, domain.ModelLinear, snap.Selected)
	assert.Equal(t, domain.ModelLinear, snap.Info.Name)
	assert.False(t, snap.ShowDetails)
	assert.Len(t, snap.Samples, regression.MaxExperience+1)
	assert.Len(t, snap.Curve, regression.MaxExperience+1)
	assert.Equal(t, uint64(1), snap.Seed)
}

func TestView_SelectModelSwitchesCurveAndDescriptionTogether(t *testing.T) {
	v := newView(t)
	before := v.Snapshot()

	require.NoError(t, v.SelectModel(domain.ModelDecisionTree))
	after := v.Snapshot()

	assert.Equal(t, domain.ModelDecisionTree, after.Info.Name)
	assert.Equal(t, domain.ModelDecisionTree, after.Score.Model)
	assert.NotEqual(t, before.Curve, after.Curve)
	assert.Equal(t, before.Samples, after.Samples, "dataset must not change on model switch")

	for _, p := range after.Curve {
		want, err := regression.Evaluate(domain.ModelDecisionTree, float64(p.Experience))
		require.NoError(t, err)
		assert.Equal(t, want, p.Predicted)
	}
}

func TestView_SelectUnknownModelKeepsState(t *testing.T) {
	v := newView(t)
	require.NoError(t, v.SelectModel(domain.ModelPolynomial))
	err := v.SelectModel("random_forest")
	assert.ErrorIs(t, err, regression.ErrUnknownModel)
	assert.Equal(t, domain.ModelPolynomial, v.Selected())
}

func TestView_ToggleDetailsKeepsDataset(t *testing.T) {
	v := newView(t)
	before := v.Samples()

	v.ToggleDetails()
	assert.True(t, v.ShowDetails())
	v.ToggleDetails()
	assert.False(t, v.ShowDetails())

	if diff := cmp.Diff(before, v.Samples()); diff != "" {
		t.Fatalf("dataset changed after toggling details (-before +after):\n%s", diff)
	}
}

func TestView_RegenerateDrawsNewData(t *testing.T) {
	v := newView(t)
	before := v.Samples()
	v.Regenerate()
	assert.Equal(t, uint64(2), v.Seed())
	assert.NotEqual(t, before, v.Samples())
}

func TestView_SamplesIsACopy(t *testing.T) {
	v := newView(t)
	s := v.Samples()
	s[0].Actual = -1
	assert.NotEqual(t, -1.0, v.Samples()[0].Actual)
}

func TestView_Curves(t *testing.T) {
	v := newView(t)
	curves := v.Curves()
	assert.Len(t, curves, 4)
	for _, name := range regression.Names() {
		assert.Len(t, curves[name], regression.MaxExperience+1, name)
	}
}

func TestService_ModelsInDisplayOrder(t *testing.T) {
	svc, err := regression.New(nil)
	require.NoError(t, err)
	var names []domain.ModelName
	for _, m := range svc.Models() {
		names = append(names, m.Name)
	}
	assert.Equal(t, regression.Names(), names)

	_, err = svc.Info("svm")
	assert.ErrorIs(t, err, regression.ErrUnknownModel)
}

func TestView_AccessorsMatchSnapshot(t *testing.T) {
	v := newView(t)
	require.NoError(t, v.SelectModel(domain.ModelDecisionTree))

	snap := v.Snapshot()
	assert.Equal(t, snap.Curve, v.Curve())
	assert.Equal(t, snap.Info, v.Description())
	assert.Equal(t, snap.Score, v.Score())
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"techangel/internal/app"
	"techangel/internal/domain"
	"techangel/internal/store"
)

const (
	aliceSS58 = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	aliceKey  = "0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceEVM  = "0xd43593c715fdd31c61141abd04a99fd6822c8558"
	aliceBack = "5FrLxJsyJ5x9n2rmxFwosFraxFCKcXZDngRLNectCn64UjtZ"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	base := []string{"--config", filepath.Join(t.TempDir(), "config.yaml"), "--log-level", "error"}
	cmd.SetArgs(append(base, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func runJSON[T any](t *testing.T, args ...string) T {
	t.Helper()
	out, err := run(t, append(args, "--output", "json")...)
	require.NoError(t, err)
	var v T
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestToEVM(t *testing.T) {
	out, err := run(t, "to-evm", aliceSS58)
	require.NoError(t, err)
	assert.Contains(t, out, aliceEVM)
	assert.Contains(t, out, "0xd43593c715Fdd31c61141ABd04a99FD6822c8558")
	assert.Contains(t, out, aliceKey)

	res := runJSON[domain.EVMConversion](t, "to-evm", aliceSS58)
	assert.Equal(t, domain.EVMAddress(aliceEVM), res.EVM)
}

func TestToSS58(t *testing.T) {
	res := runJSON[domain.SS58Conversion](t, "to-ss58", aliceEVM)
	assert.Equal(t, domain.SS58Address(aliceBack), res.SS58)
	assert.EqualValues(t, 42, res.Format)

	res = runJSON[domain.SS58Conversion](t, "to-ss58", aliceEVM, "--format", "0")
	assert.EqualValues(t, 0, res.Format)
	assert.True(t, strings.HasPrefix(string(res.SS58), "1"), res.SS58)
}

func TestDecode(t *testing.T) {
	res := runJSON[domain.DecodedAddress](t, "decode", aliceSS58)
	assert.EqualValues(t, 42, res.Format)
	assert.Equal(t, aliceKey, res.PublicKey.Hex())
}

func TestAddressErrors(t *testing.T) {
	_, err := run(t, "to-evm", "nonsense")
	assert.Error(t, err)
	_, err = run(t, "to-ss58", "0x1234")
	assert.Error(t, err)
	_, err = run(t, "to-evm")
	assert.Error(t, err)
	_, err = run(t, "decode", aliceSS58, "--output", "yaml")
	assert.Error(t, err)
}

func TestRegression(t *testing.T) {
	a := runJSON[domain.PredictResponse](t, "regression", "--seed", "7", "--model", "tree")
	b := runJSON[domain.PredictResponse](t, "regression", "--seed", "7", "--model", "decision_tree")
	assert.Equal(t, domain.ModelDecisionTree, a.Model)
	assert.Equal(t, uint64(7), a.Seed)
	assert.Len(t, a.Predictions, 21)
	assert.Equal(t, a.Predictions, b.Predictions)

	out, err := run(t, "regression", "--seed", "7", "--details")
	require.NoError(t, err)
	assert.Contains(t, out, "seed 7")
	assert.Contains(t, out, "Linear Regression")
	assert.Contains(t, out, "Pros")

	_, err = run(t, "regression", "--model", "forest")
	assert.Error(t, err)
}

func TestRegressionAll(t *testing.T) {
	res := runJSON[[]domain.PredictResponse](t, "regression", "--all", "--seed", "3")
	require.Len(t, res, 4)
	for i, want := range []domain.ModelName{domain.ModelLinear, domain.ModelPolynomial, domain.ModelDecisionTree, domain.ModelNeuralNetwork} {
		assert.Equal(t, want, res[i].Model)
		assert.Equal(t, res[0].Predictions[5].Actual, res[i].Predictions[5].Actual)
	}
}

func TestRegressionExport(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "out", "export.json")
	pngPath := filepath.Join(dir, "out", "chart.png")

	out, err := run(t, "regression", "export", "--seed", "11", "--model", "poly", "--out", jsonPath, "--chart", pngPath)
	require.NoError(t, err)
	assert.Contains(t, out, "seed 11")

	exp, err := store.LoadExport(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), exp.Seed)
	assert.Equal(t, domain.ModelPolynomial, exp.Selected)
	assert.Len(t, exp.Samples, 21)
	assert.Len(t, exp.Predictions, 4)
	assert.Len(t, exp.Scores, 4)
	assert.True(t, store.Exists(pngPath))

	_, err = run(t, "regression", "export")
	assert.Error(t, err, "--out is required")

	_, err = run(t, "regression", "export", "--out", jsonPath)
	assert.Error(t, err, "existing file needs --force")

	_, err = run(t, "regression", "export", "--seed", "12", "--out", jsonPath, "--force")
	require.NoError(t, err)
	exp, err = store.LoadExport(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), exp.Seed)

	_, err = run(t, "regression", "export", "--out", filepath.Join(dir, "other.json"), "--chart", filepath.Join(dir, "chart.gif"))
	assert.Error(t, err)
}

func TestRemoteServer(t *testing.T) {
	w, err := app.NewWire(app.DefaultConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.WaitReady(context.Background()))
	srv, err := w.NewServer(false)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	out, err := run(t, "--server", ts.URL, "to-evm", aliceSS58)
	require.NoError(t, err)
	assert.Contains(t, out, aliceEVM)

	res := runJSON[domain.PredictResponse](t, "--server", ts.URL, "regression", "--seed", "7", "--model", "nn")
	local := runJSON[domain.PredictResponse](t, "regression", "--seed", "7", "--model", "nn")
	assert.Equal(t, local, res)

	_, err = run(t, "--server", ts.URL, "to-ss58", "0x1234")
	assert.Error(t, err)

	_, err = run(t, "--server", ts.URL, "tui")
	assert.Error(t, err)
}

package webui

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"techangel/internal/domain"
	"techangel/internal/services/converter"
)

func observerCore() (zapcore.Core, *observer.ObservedLogs) {
	return observer.New(zapcore.DebugLevel)
}

func TestIndex(t *testing.T) {
	rec := get(t, newTestServer(t, pendingGate{}, nil).Handler(), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/converter"`)
	assert.Contains(t, rec.Body.String(), `href="/regression"`)
}

func TestConverterPage_Flow(t *testing.T) {
	h := newTestServer(t, readyGate(t), nil).Handler()
	b := newBrowser(t, h)

	rec := b.do(http.MethodGet, "/converter", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, b.cookies)
	assert.NotContains(t, rec.Body.String(), "Loading Polkadot")

	rec = b.do(http.MethodPost, "/converter/to-evm", url.Values{"polka": {aliceSS58}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/converter", rec.Header().Get("Location"))

	body := b.do(http.MethodGet, "/converter", nil).Body.String()
	assert.Contains(t, body, aliceEVM)
	assert.Contains(t, body, aliceKey)

	b.do(http.MethodPost, "/converter/to-ss58", url.Values{"eth": {aliceEVM}})
	body = b.do(http.MethodGet, "/converter", nil).Body.String()
	assert.Contains(t, body, aliceBack)
	assert.NotContains(t, body, `id="error"`)

	b.do(http.MethodPost, "/converter/to-ss58", url.Values{"eth": {"0x1234"}})
	body = b.do(http.MethodGet, "/converter", nil).Body.String()
	assert.Contains(t, body, converter.MsgMalformedEVM)
	assert.NotContains(t, body, aliceBack)

	b.do(http.MethodPost, "/converter/to-evm", url.Values{"polka": {""}})
	body = b.do(http.MethodGet, "/converter", nil).Body.String()
	assert.Contains(t, body, converter.MsgMissingSS58)
}

func TestConverterPage_NotReady(t *testing.T) {
	b := newBrowser(t, newTestServer(t, pendingGate{}, nil).Handler())

	body := b.do(http.MethodGet, "/converter", nil).Body.String()
	assert.Contains(t, body, "Loading Polkadot")
	assert.Contains(t, body, "disabled")

	b.do(http.MethodPost, "/converter/to-evm", url.Values{"polka": {aliceSS58}})
	body = b.do(http.MethodGet, "/converter", nil).Body.String()
	assert.Contains(t, body, converter.MsgNotReady)
	assert.NotContains(t, body, aliceEVM)
}

func TestConverterPage_InitFailed(t *testing.T) {
	b := newBrowser(t, newTestServer(t, pendingGate{err: errors.New("boom")}, nil).Handler())
	body := b.do(http.MethodGet, "/converter", nil).Body.String()
	assert.Contains(t, body, converter.MsgInitFailed)
}

func TestSessionsAreIsolated(t *testing.T) {
	h := newTestServer(t, readyGate(t), nil).Handler()
	alice, bob := newBrowser(t, h), newBrowser(t, h)

	alice.do(http.MethodPost, "/converter/to-evm", url.Values{"polka": {aliceSS58}})
	assert.Contains(t, alice.do(http.MethodGet, "/converter", nil).Body.String(), aliceEVM)
	assert.NotContains(t, bob.do(http.MethodGet, "/converter", nil).Body.String(), aliceEVM)
	assert.NotEqual(t, alice.cookies[0].Value, bob.cookies[0].Value)
}

func TestRegressionPage_Flow(t *testing.T) {
	s := newTestServer(t, pendingGate{}, nil)
	b := newBrowser(t, s.Handler())

	body := b.do(http.MethodGet, "/regression", nil).Body.String()
	assert.Contains(t, body, "Linear Regression")
	assert.NotContains(t, body, `id="details"`)

	sess := s.sessions.sessions[b.cookies[0].Value]
	require.NotNil(t, sess)
	seed := sess.regression.Seed()

	rec := b.do(http.MethodPost, "/regression/model", url.Values{"model": {"polynomial"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, domain.ModelPolynomial, sess.regression.Selected())

	b.do(http.MethodPost, "/regression/details", nil)
	body = b.do(http.MethodGet, "/regression", nil).Body.String()
	assert.Contains(t, body, `id="details"`)
	assert.Equal(t, seed, sess.regression.Seed())

	b.do(http.MethodPost, "/regression/regenerate", nil)
	assert.NotEqual(t, seed, sess.regression.Seed())

	rec = b.do(http.MethodPost, "/regression/model", url.Values{"model": {"forest"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domain.ModelPolynomial, sess.regression.Selected())
}

func TestRegressionPage_SessionsShareFirstDataset(t *testing.T) {
	s := newTestServer(t, pendingGate{}, nil)
	alice, bob := newBrowser(t, s.Handler()), newBrowser(t, s.Handler())

	alice.do(http.MethodGet, "/regression", nil)
	alice.do(http.MethodPost, "/regression/regenerate", nil)
	bob.do(http.MethodGet, "/regression", nil)

	a := s.sessions.sessions[alice.cookies[0].Value]
	b := s.sessions.sessions[bob.cookies[0].Value]
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, uint64(2), a.regression.Seed())
	assert.Equal(t, uint64(1), b.regression.Seed())
}

func TestRegressionChart(t *testing.T) {
	b := newBrowser(t, newTestServer(t, pendingGate{}, nil).Handler())
	for _, path := range []string{"/regression/chart.svg", "/regression/chart.svg?all=1"} {
		rec := b.do(http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
		assert.True(t, strings.Contains(rec.Body.String(), "<svg"), path)
	}
}

func TestDebugState(t *testing.T) {
	b := newBrowser(t, newTestServer(t, readyGate(t), nil).Handler())
	b.do(http.MethodPost, "/converter/to-evm", url.Values{"polka": {aliceSS58}})

	rec := b.do(http.MethodGet, "/debug/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), aliceEVM)
	assert.Contains(t, rec.Body.String(), b.cookies[0].Value)
}

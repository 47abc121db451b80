package webui

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"techangel/internal/domain"
	"techangel/internal/services/regression"
)

const maxBodyBytes = 1 << 16

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		sendError(w, r, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) apiToEVMHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.AddressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res, err := s.opts.Converter.ToEVM(r.Context(), req.Address)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, res)
}

func (s *Server) apiToSS58Handler(w http.ResponseWriter, r *http.Request) {
	var req domain.AddressRequest
	if !decodeBody(w, r, &req) {
		return
	}
	format := s.opts.Format
	if req.Format != nil {
		format = *req.Format
	}
	res, err := s.opts.Converter.ToSS58(r.Context(), req.Address, format)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, res)
}

func (s *Server) apiDecodeHandler(w http.ResponseWriter, r *http.Request) {
	addr := httprouter.ParamsFromContext(r.Context()).ByName("address")
	res, err := s.opts.Converter.Decode(r.Context(), addr)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, res)
}

func (s *Server) apiModelsHandler(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, r, http.StatusOK, s.opts.Regression.Models())
}

func (s *Server) apiDatasetHandler(w http.ResponseWriter, r *http.Request) {
	seed, ok := s.seedParam(w, r)
	if !ok {
		return
	}
	sendJSON(w, r, http.StatusOK, domain.DatasetResponse{
		Seed:    seed,
		Samples: s.opts.Regression.Dataset(seed),
	})
}

func (s *Server) apiPredictHandler(w http.ResponseWriter, r *http.Request) {
	name, err := regression.ParseModel(httprouter.ParamsFromContext(r.Context()).ByName("model"))
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	seed, ok := s.seedParam(w, r)
	if !ok {
		return
	}

	samples := s.opts.Regression.Dataset(seed)
	preds, err := s.opts.Regression.Predict(name, samples)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	score, err := s.opts.Regression.Score(name, samples)
	if err != nil {
		sendServiceError(w, r, err)
		return
	}
	sendJSON(w, r, http.StatusOK, domain.PredictResponse{
		Seed:        seed,
		Model:       name,
		Predictions: preds,
		Score:       score,
	})
}

// seedParam reads ?seed=N; absent means a random seed.
func (s *Server) seedParam(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	v := r.URL.Query().Get("seed")
	if v == "" {
		return rand.Uint64(), true
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		sendError(w, r, http.StatusBadRequest, "seed must be an unsigned integer")
		return 0, false
	}
	return seed, true
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	switch {
	case s.opts.Gate.Ready():
		sendJSON(w, r, http.StatusOK, domain.Health{Status: "ready"})
	case s.opts.Gate.Err() != nil:
		sendJSON(w, r, http.StatusServiceUnavailable, domain.Health{Status: "failed", Error: s.opts.Gate.Err().Error()})
	default:
		sendJSON(w, r, http.StatusServiceUnavailable, domain.Health{Status: "starting"})
	}
}

package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (s *Server) routes() *httprouter.Router {
	r := httprouter.New()

	r.HandlerFunc(http.MethodGet, "/", s.indexHandler)
	r.HandlerFunc(http.MethodGet, "/healthz", s.healthHandler)

	r.HandlerFunc(http.MethodGet, "/converter", s.converterPageHandler)
	r.HandlerFunc(http.MethodPost, "/converter/to-evm", s.converterToEVMHandler)
	r.HandlerFunc(http.MethodPost, "/converter/to-ss58", s.converterToSS58Handler)

	r.HandlerFunc(http.MethodGet, "/regression", s.regressionPageHandler)
	r.HandlerFunc(http.MethodPost, "/regression/model", s.regressionModelHandler)
	r.HandlerFunc(http.MethodPost, "/regression/details", s.regressionDetailsHandler)
	r.HandlerFunc(http.MethodPost, "/regression/regenerate", s.regressionRegenerateHandler)
	r.HandlerFunc(http.MethodGet, "/regression/chart.svg", s.regressionChartHandler)

	r.HandlerFunc(http.MethodPost, "/api/v1/address/to-evm", s.apiToEVMHandler)
	r.HandlerFunc(http.MethodPost, "/api/v1/address/to-ss58", s.apiToSS58Handler)
	r.HandlerFunc(http.MethodGet, "/api/v1/address/decode/:address", s.apiDecodeHandler)
	r.HandlerFunc(http.MethodGet, "/api/v1/regression/models", s.apiModelsHandler)
	r.HandlerFunc(http.MethodGet, "/api/v1/regression/dataset", s.apiDatasetHandler)
	r.HandlerFunc(http.MethodGet, "/api/v1/regression/predict/:model", s.apiPredictHandler)

	if s.opts.Debug {
		r.HandlerFunc(http.MethodGet, "/debug/state", s.debugStateHandler)
	}

	r.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendError(w, r, http.StatusNotFound, "resource not found")
	})
	return r
}

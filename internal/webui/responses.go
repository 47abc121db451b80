package webui

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"techangel/internal/domain"
	"techangel/internal/logging"
	"techangel/internal/services/converter"
	"techangel/internal/services/regression"
)

func sendJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		serverError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func sendError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	sendJSON(w, r, status, domain.ErrorResponse{Code: status, Error: msg})
}

// sendServiceError maps a service error onto a status code.
func sendServiceError(w http.ResponseWriter, r *http.Request, err error) {
	sendError(w, r, statusFor(err), err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, converter.ErrNotReady), errors.Is(err, converter.ErrInitFailed):
		return http.StatusServiceUnavailable
	case errors.Is(err, converter.ErrMissingInput), errors.Is(err, converter.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, regression.ErrUnknownModel):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err,
		zap.String("path", r.URL.Path))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

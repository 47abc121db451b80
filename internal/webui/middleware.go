package webui

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"techangel/internal/logging"
)

// responseWriter captures the status code and body size.
type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// accessLog logs one line per request and puts logger into the request
// context.
func accessLog(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		r = r.WithContext(logging.WithLogger(r.Context(), logger))
		wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		logging.LogHTTPRequest(logger, r.Method, r.URL.Path, wrapped.status, wrapped.bytes, time.Since(start),
			zap.String("remote", r.RemoteAddr),
			zap.String("user_agent", r.UserAgent()))
	})
}

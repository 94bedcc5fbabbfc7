package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/logger"
)

// withLogging writes one access log entry per request. It never logs
// request bodies, which may contain card numbers.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.URL.Path).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

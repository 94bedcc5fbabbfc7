package http

import (
	"net/http"

	"github.com/rs/cors"
)

// corsPolicy admits any origin.
var corsPolicy = cors.New(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	AllowedHeaders: []string{"Content-Type", "Accept", "Content-Encoding", traceIDHeader},
	ExposedHeaders: []string{traceIDHeader},
	MaxAge:         600,
})

// withCORS adds CORS headers and answers preflight requests with 204.
func withCORS(next http.Handler) http.Handler {
	return corsPolicy.Handler(next)
}

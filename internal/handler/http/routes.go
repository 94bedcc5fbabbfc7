package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withCORS)
	router.Use(h.metrics.Middleware)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Post("/api/validate", h.validateCard)
		r.Get("/api/history", h.getHistory)
	})

	router.Get("/api/health", h.getHealth)
	router.Get("/api/version", h.getServerVersion)
	router.Method("GET", "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

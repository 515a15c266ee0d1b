package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter mounts the ready-time API. Calculation endpoints are rate
// limited per client address; history and health are not.
func NewRouter(h *ReadyTimeHandler, limiter *RateLimiter, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Route("/ready-time", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(RateLimitMiddleware(limiter, logger))
			r.Post("/calculate", h.Calculate)
			r.Get("/calculate", h.CalculateQuery)
		})
		r.Get("/history", h.History)
	})

	return r
}

// Package api serves spot conditions over HTTP as JSON
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
)

// RequestsPerMinute is the per-IP rate limit. Every conditions request
// costs two upstream calls.
const RequestsPerMinute = 60

// NewRouter builds the chi router with all routes configured
func NewRouter(handlers *Handlers, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(httprate.LimitByIP(RequestsPerMinute, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Get("/spots", handlers.ListSpots)
		r.Get("/spots/{id}/conditions", handlers.GetConditions)
		r.Get("/spots/{id}/readings", handlers.GetReadings)
	})

	return r
}

var _ http.Handler = (*chi.Mux)(nil)

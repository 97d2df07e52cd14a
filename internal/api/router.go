// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/middleware"
)

// Router wires the handlers to chi routes and the middleware stack.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler using the CORS and rate limit
// settings in sec. A nil sec uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)),
	}
}

// SetupChi configures all HTTP routes using Chi router.
//
// Catalog ids are constrained to digits, so /movie/abc never reaches a
// handler and is answered by the router's 404, which like every catalog
// miss has an empty body.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(middleware.AccessLog)         // One log line per request
	r.Use(chimiddleware.Recoverer)      // Recover from panics
	r.Use(middleware.PrometheusMetrics) // Labelled by route pattern
	r.Use(router.chiMiddleware.CORS())  // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.Compression)       // gzip when accepted

	r.NotFound(notFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitCustom("health", RateLimitHealth))
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Catalog Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit("catalog"))
		r.Use(APISecurityHeaders())

		r.Route("/movie", func(r chi.Router) {
			r.Get("/", router.handler.ListMovies)
			r.Get("/{id:[0-9]+}", router.handler.GetMovie)
		})

		r.Route("/director", func(r chi.Router) {
			r.Post("/", router.handler.CreateDirector)
			r.Put("/{id:[0-9]+}", router.handler.UpdateDirector)
			r.Delete("/{id:[0-9]+}", router.handler.DeleteDirector)
		})

		r.Route("/genre", func(r chi.Router) {
			r.Put("/{id:[0-9]+}", router.handler.UpdateGenre)
			r.Delete("/{id:[0-9]+}", router.handler.DeleteGenre)
		})
	})

	// ========================
	// Operational Endpoints
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"context"
	"time"

	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/models"
)

// CatalogStore is the storage the handlers need. *database.DB implements it;
// tests may substitute a fake to inject failures.
type CatalogStore interface {
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.Movie, error)
	GetMovie(ctx context.Context, id uint) (*models.Movie, error)

	GetDirector(ctx context.Context, id uint) (*models.Director, error)
	CreateDirector(ctx context.Context, name string) (*models.Director, error)
	UpdateDirector(ctx context.Context, id uint, name string) error
	DeleteDirector(ctx context.Context, id uint) error

	GetGenre(ctx context.Context, id uint) (*models.Genre, error)
	CreateGenre(ctx context.Context, name string) (*models.Genre, error)
	UpdateGenre(ctx context.Context, id uint, name string) error
	DeleteGenre(ctx context.Context, id uint) error

	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: id parsing, body decoding and error mapping
//   - handlers_movies.go: movie list and lookup
//   - handlers_directors.go: director create, update and delete
//   - handlers_genres.go: genre update and delete
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	store     CatalogStore
	api       config.APIConfig
	compat    config.CompatConfig
	startTime time.Time
}

// NewHandler creates a new API handler. The store is shared by every request
// and must be safe for concurrent use.
//
// Example:
//
//	handler := api.NewHandler(db, cfg)
//	router := api.NewRouter(handler, &cfg.Security)
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(store CatalogStore, cfg *config.Config) *Handler {
	h := &Handler{
		store:     store,
		startTime: time.Now(),
	}
	if cfg != nil {
		h.api = cfg.API
		h.compat = cfg.Compat
	}
	if h.api.MaxBodyBytes <= 0 {
		h.api.MaxBodyBytes = defaultMaxBodyBytes
	}
	return h
}

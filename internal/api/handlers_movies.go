// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"net/http"
)

// ListMovies returns the movies matching the optional filters.
//
// @Summary List movies
// @Description Returns every movie whose director_id and genre_id equal the given values. Filters are optional and combined with AND; an empty value is ignored. When nothing matches the response is 404 with an empty body, unless api.empty_list_not_found is disabled.
// @Tags Movies
// @Produce json
// @Param director_id query int false "Director ID"
// @Param genre_id query int false "Genre ID"
// @Success 200 {array} models.Movie "Matching movies ordered by id"
// @Failure 400 {object} api.APIResponse "Filter is not a non-negative integer"
// @Failure 404 "No movie matches"
// @Failure 500 {object} api.APIResponse "Database error"
// @Router /movie/ [get]
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filter, verr := movieFilter(r)
	if verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	movies, err := h.store.ListMovies(r.Context(), filter)
	if err != nil {
		rw.DatabaseError(err)
		return
	}

	if len(movies) == 0 && h.api.EmptyListNotFound {
		notFound(w, r)
		return
	}

	rw.Entity(http.StatusOK, movies)
}

// GetMovie returns a single movie.
//
// @Summary Get a movie
// @Description Returns the movie with the given id. genre_id and director_id are null when unset.
// @Tags Movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 404 "Movie not found"
// @Failure 500 {object} api.APIResponse "Database error"
// @Router /movie/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w, r)
		return
	}

	movie, err := h.store.GetMovie(r.Context(), id)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	NewResponseWriter(w, r).Entity(http.StatusOK, movie)
}

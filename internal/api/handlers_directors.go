// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"net/http"

	"github.com/tomtom215/movieapi/internal/logging"
	"github.com/tomtom215/movieapi/internal/metrics"
)

// CreateDirector stores a new name from the request body.
//
// With compat.director_create_writes_genre enabled (the default) the name is
// stored as a Genre, as the legacy service did; otherwise a Director is created.
//
// @Summary Create a director
// @Description Creates a record from {"name": "..."}. For compatibility with existing clients the record is written to the genre table unless compat.director_create_writes_genre is false.
// @Tags Directors
// @Accept json
// @Param body body models.NameInput true "Director name"
// @Success 201 "Created, empty body"
// @Failure 400 {object} api.APIResponse "Malformed body or missing name"
// @Failure 413 {object} api.APIResponse "Body too large"
// @Failure 500 {object} api.APIResponse "Database error"
// @Router /director/ [post]
func (h *Handler) CreateDirector(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeNameInput(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if h.compat.DirectorCreateWritesGenre {
		g, err := h.store.CreateGenre(ctx, in.Name)
		if err != nil {
			NewResponseWriter(w, r).DatabaseError(err)
			return
		}
		metrics.LegacyDirectorCreates.Inc()
		logging.Ctx(ctx).Info().
			Uint("genre_id", g.ID).
			Str("name", sanitizeLogValue(in.Name)).
			Msg("Director create stored as genre (compat.director_create_writes_genre)")
	} else {
		d, err := h.store.CreateDirector(ctx, in.Name)
		if err != nil {
			NewResponseWriter(w, r).DatabaseError(err)
			return
		}
		logging.Ctx(ctx).Info().
			Uint("director_id", d.ID).
			Str("name", sanitizeLogValue(in.Name)).
			Msg("Director created")
	}

	w.WriteHeader(http.StatusCreated)
}

// UpdateDirector renames a director.
//
// @Summary Rename a director
// @Description Looks the director up first; a missing id answers 404 without reading the body.
// @Tags Directors
// @Accept json
// @Param id path int true "Director ID"
// @Param body body models.NameInput true "New name"
// @Success 200 "Updated, empty body"
// @Failure 400 {object} api.APIResponse "Malformed body or missing name"
// @Failure 404 "Director not found"
// @Failure 500 {object} api.APIResponse "Database error"
// @Router /director/{id} [put]
func (h *Handler) UpdateDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w, r)
		return
	}

	ctx := r.Context()
	if _, err := h.store.GetDirector(ctx, id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	in, ok := h.decodeNameInput(w, r)
	if !ok {
		return
	}

	if err := h.store.UpdateDirector(ctx, id, in.Name); err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(ctx).Info().Uint("director_id", id).Msg("Director updated")
	w.WriteHeader(http.StatusOK)
}

// DeleteDirector removes a director. Movies that referenced it keep their
// row with director_id set to null.
//
// @Summary Delete a director
// @Tags Directors
// @Param id path int true "Director ID"
// @Success 200 "Deleted, empty body"
// @Failure 404 "Director not found"
// @Failure 500 {object} api.APIResponse "Database error"
// @Router /director/{id} [delete]
func (h *Handler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w, r)
		return
	}

	if err := h.store.DeleteDirector(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Uint("director_id", id).Msg("Director deleted")
	w.WriteHeader(http.StatusOK)
}

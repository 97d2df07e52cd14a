// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"net/http"

	"github.com/tomtom215/movieapi/internal/logging"
)

// UpdateGenre renames a genre.
//
// @Summary Rename a genre
// @Description Looks the genre up first; a missing id answers 404 without reading the body.
// @Tags Genres
// @Accept json
// @Param id path int true "Genre ID"
// @Param body body models.NameInput true "New name"
// @Success 200 "Updated, empty body"
// @Failure 400 {object} api.APIResponse "Malformed body or missing name"
// @Failure 404 "Genre not found"
// @Failure 500 {object} api.APIResponse "Database error"
// @Router /genre/{id} [put]
func (h *Handler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w, r)
		return
	}

	ctx := r.Context()
	if _, err := h.store.GetGenre(ctx, id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	in, ok := h.decodeNameInput(w, r)
	if !ok {
		return
	}

	if err := h.store.UpdateGenre(ctx, id, in.Name); err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(ctx).Info().Uint("genre_id", id).Msg("Genre updated")
	w.WriteHeader(http.StatusOK)
}

// DeleteGenre removes a genre. Movies that referenced it keep their row
// with genre_id set to null.
//
// @Summary Delete a genre
// @Tags Genres
// @Param id path int true "Genre ID"
// @Success 200 "Deleted, empty body"
// @Failure 404 "Genre not found"
// @Failure 500 {object} api.APIResponse "Database error"
// @Router /genre/{id} [delete]
func (h *Handler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w, r)
		return
	}

	if err := h.store.DeleteGenre(r.Context(), id); err != nil {
		respondStoreError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Uint("genre_id", id).Msg("Genre deleted")
	w.WriteHeader(http.StatusOK)
}

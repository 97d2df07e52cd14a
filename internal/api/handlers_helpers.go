// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/movieapi/internal/database"
	"github.com/tomtom215/movieapi/internal/models"
	"github.com/tomtom215/movieapi/internal/validation"
)

// defaultMaxBodyBytes caps request bodies when no limit is configured.
const defaultMaxBodyBytes int64 = 1 << 20

// sanitizeLogValue removes control characters from user input before it is logged.
func sanitizeLogValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// pathID returns the {id} route parameter. Routes constrain it to digits, so
// the only failure is a value too large for uint, which can never match a
// row and is treated as absent.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// queryUint parses an optional unsigned integer query parameter. A missing
// or empty parameter yields nil.
func queryUint(r *http.Request, key string) (*uint, *validation.RequestValidationError) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return nil, validation.NewFieldError(key, "uint", raw, key+" must be a non-negative integer")
	}
	id := uint(v)
	return &id, nil
}

// movieFilter builds a MovieFilter from the director_id and genre_id query parameters.
func movieFilter(r *http.Request) (models.MovieFilter, *validation.RequestValidationError) {
	var filter models.MovieFilter
	var verr *validation.RequestValidationError

	if filter.DirectorID, verr = queryUint(r, "director_id"); verr != nil {
		return filter, verr
	}
	if filter.GenreID, verr = queryUint(r, "genre_id"); verr != nil {
		return filter, verr
	}
	return filter, nil
}

// decodeNameInput reads and validates a {"name": ...} body. It writes the
// 4xx response itself and reports whether the handler may continue.
func (h *Handler) decodeNameInput(w http.ResponseWriter, r *http.Request) (models.NameInput, bool) {
	var in models.NameInput
	rw := NewResponseWriter(w, r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.api.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.PayloadTooLarge(tooLarge.Limit)
			return in, false
		}
		rw.BadRequest("Failed to read request body")
		return in, false
	}

	err = validation.DecodeJSON(bytes.NewReader(body), &in)
	if err == nil {
		return in, true
	}

	var valErr *validation.RequestValidationError
	if errors.As(err, &valErr) {
		apiErr := valErr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return in, false
	}

	rw.BadRequest(err.Error())
	return in, false
}

// respondStoreError maps a storage error to a response: absence is a 404
// with no body, everything else a logged 500.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, database.ErrNotFound) {
		notFound(w, r)
		return
	}
	NewResponseWriter(w, r).DatabaseError(err)
}

// notFound writes a 404 with an empty body.
func notFound(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Empty(http.StatusNotFound)
}

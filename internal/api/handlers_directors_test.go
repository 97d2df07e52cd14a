// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/movieapi/internal/database"
	"github.com/tomtom215/movieapi/internal/metrics"
)

func TestCreateDirector_StoresGenre(t *testing.T) {
	// Not parallel: asserts on the global legacy counter.
	c := newTestCatalog(t)
	ctx := context.Background()
	before := testutil.ToFloat64(metrics.LegacyDirectorCreates)

	assertEmpty(t, c.do(t, http.MethodPost, "/director/", `{"name":"Nolan"}`), http.StatusCreated)

	genres, err := c.db.ListGenres(ctx)
	if err != nil {
		t.Fatalf("ListGenres() error = %v", err)
	}
	if len(genres) != 1 || genres[0].Name != "Nolan" {
		t.Errorf("genres = %+v, want one named Nolan", genres)
	}

	directors, err := c.db.ListDirectors(ctx)
	if err != nil {
		t.Fatalf("ListDirectors() error = %v", err)
	}
	if len(directors) != 0 {
		t.Errorf("directors = %+v, want none", directors)
	}

	if got := testutil.ToFloat64(metrics.LegacyDirectorCreates) - before; got != 1 {
		t.Errorf("legacy creates increased by %v, want 1", got)
	}
}

func TestCreateDirector_Fixed(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, withDirectorCreateFixed())
	ctx := context.Background()

	assertEmpty(t, c.do(t, http.MethodPost, "/director", `{"name":"Céline Sciamma"}`), http.StatusCreated)

	directors, err := c.db.ListDirectors(ctx)
	if err != nil {
		t.Fatalf("ListDirectors() error = %v", err)
	}
	if len(directors) != 1 || directors[0].Name != "Céline Sciamma" {
		t.Errorf("directors = %+v", directors)
	}

	genres, err := c.db.ListGenres(ctx)
	if err != nil {
		t.Fatalf("ListGenres() error = %v", err)
	}
	if len(genres) != 0 {
		t.Errorf("genres = %+v, want none", genres)
	}
}

func TestCreateDirector_BadBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"empty body", "", ErrCodeBadRequest},
		{"malformed json", `{"name":`, ErrCodeBadRequest},
		{"not an object", `["Nolan"]`, ErrCodeBadRequest},
		{"wrong type", `{"name":42}`, ErrCodeBadRequest},
		{"unknown field", `{"name":"Nolan","age":55}`, ErrCodeBadRequest},
		{"second object", `{"name":"Nolan"} {"x":1}`, ErrCodeBadRequest},
		{"trailing garbage", `{"name":"Nolan"} garbage`, ErrCodeBadRequest},
		{"extra brace", `{"name":"Nolan"}}`, ErrCodeBadRequest},
		{"missing name", `{}`, ErrCodeValidationFailed},
		{"empty name", `{"name":""}`, ErrCodeValidationFailed},
		{"name too long", `{"name":"` + strings.Repeat("x", 256) + `"}`, ErrCodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestCatalog(t)
			decodeError(t, c.do(t, http.MethodPost, "/director/", tt.body), http.StatusBadRequest, tt.wantCode)

			genres, err := c.db.ListGenres(context.Background())
			if err != nil {
				t.Fatalf("ListGenres() error = %v", err)
			}
			if len(genres) != 0 {
				t.Errorf("rejected request stored %+v", genres)
			}
		})
	}
}

func TestCreateDirector_BodyTooLarge(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t, withMaxBodyBytes(32))
	body := `{"name":"` + strings.Repeat("a", 64) + `"}`

	decodeError(t, c.do(t, http.MethodPost, "/director/", body), http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge)
}

func TestCreateDirector_DatabaseError(t *testing.T) {
	t.Parallel()

	rec := doRequest(newFailingRouter(errStoreDown), http.MethodPost, "/director/", `{"name":"Nolan"}`)
	decodeError(t, rec, http.StatusInternalServerError, ErrCodeDatabaseError)
}

func TestUpdateDirector(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	id := c.director(t, "Akira Kurosawa")
	target := "/director/" + strconv.Itoa(int(id))

	assertEmpty(t, c.do(t, http.MethodPut, target, `{"name":"A. Kurosawa"}`), http.StatusOK)

	d, err := c.db.GetDirector(context.Background(), id)
	if err != nil {
		t.Fatalf("GetDirector() error = %v", err)
	}
	if d.Name != "A. Kurosawa" {
		t.Errorf("Name = %q, want %q", d.Name, "A. Kurosawa")
	}
}

func TestUpdateDirector_BadBodyLeavesRow(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	id := c.director(t, "Chantal Akerman")
	target := "/director/" + strconv.Itoa(int(id))

	decodeError(t, c.do(t, http.MethodPut, target, `{"title":"x"}`), http.StatusBadRequest, ErrCodeBadRequest)
	decodeError(t, c.do(t, http.MethodPut, target, `{}`), http.StatusBadRequest, ErrCodeValidationFailed)

	d, err := c.db.GetDirector(context.Background(), id)
	if err != nil {
		t.Fatalf("GetDirector() error = %v", err)
	}
	if d.Name != "Chantal Akerman" {
		t.Errorf("Name = %q, want unchanged", d.Name)
	}
}

func TestUpdateDirector_NotFoundBeforeBody(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	// A missing row answers 404 even when the body is unusable.
	for _, body := range []string{`{"name":"Nobody"}`, `not json`, ""} {
		assertEmpty(t, c.do(t, http.MethodPut, "/director/999", body), http.StatusNotFound)
	}
}

func TestDeleteDirector(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	ctx := context.Background()
	id := c.director(t, "Andrei Tarkovsky")
	movieID := c.movie(t, "Solaris", ptr(id), nil)
	target := "/director/" + strconv.Itoa(int(id))

	assertEmpty(t, c.do(t, http.MethodDelete, target, ""), http.StatusOK)

	if _, err := c.db.GetDirector(ctx, id); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("GetDirector() after delete error = %v, want ErrNotFound", err)
	}

	m, err := c.db.GetMovie(ctx, movieID)
	if err != nil {
		t.Fatalf("GetMovie() error = %v", err)
	}
	if m.DirectorID != nil {
		t.Errorf("DirectorID = %d, want nil after delete", *m.DirectorID)
	}

	// Every later request for the id is a miss.
	assertEmpty(t, c.do(t, http.MethodPut, target, `{"name":"Again"}`), http.StatusNotFound)
	assertEmpty(t, c.do(t, http.MethodDelete, target, ""), http.StatusNotFound)
}

func TestDirector_NotFoundPaths(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)

	tests := []struct {
		method string
		target string
	}{
		{http.MethodDelete, "/director/999"},
		{http.MethodDelete, "/director/abc"},
		{http.MethodPut, "/director/abc"},
		{http.MethodPut, "/director/18446744073709551616"},
	}

	for _, tt := range tests {
		assertEmpty(t, c.do(t, tt.method, tt.target, `{"name":"x"}`), http.StatusNotFound)
	}
}

func TestDirector_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	c := newTestCatalog(t)
	id := c.director(t, "Satyajit Ray")

	// Directors have no read endpoint.
	rec := c.do(t, http.MethodGet, "/director/"+strconv.Itoa(int(id)), "")
	assertEmpty(t, rec, http.StatusMethodNotAllowed)
}

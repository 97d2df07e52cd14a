// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/database"
	"github.com/tomtom215/movieapi/internal/models"
)

// testCatalog is a running router over a private in-memory database.
type testCatalog struct {
	db      *database.DB
	handler http.Handler
}

type catalogOption func(*config.Config)

func withEmptyListOK() catalogOption {
	return func(c *config.Config) { c.API.EmptyListNotFound = false }
}

func withDirectorCreateFixed() catalogOption {
	return func(c *config.Config) { c.Compat.DirectorCreateWritesGenre = false }
}

func withMaxBodyBytes(n int64) catalogOption {
	return func(c *config.Config) { c.API.MaxBodyBytes = n }
}

// testConfig returns the service defaults with rate limiting off.
func testConfig(opts ...catalogOption) *config.Config {
	cfg := &config.Config{
		API: config.APIConfig{
			EmptyListNotFound: true,
			MaxBodyBytes:      1 << 20,
		},
		Compat: config.CompatConfig{
			DirectorCreateWritesGenre: true,
		},
		Security: config.SecurityConfig{
			RateLimitDisabled: true,
			CORSOrigins:       []string{"*"},
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func newTestCatalog(t *testing.T, opts ...catalogOption) *testCatalog {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := testConfig(opts...)
	router := NewRouter(NewHandler(db, cfg), &cfg.Security)

	return &testCatalog{db: db, handler: router.SetupChi()}
}

// do sends a request through the full router.
func (c *testCatalog) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	return doRequest(c.handler, method, target, body)
}

func doRequest(handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func (c *testCatalog) director(t *testing.T, name string) uint {
	t.Helper()
	d, err := c.db.CreateDirector(context.Background(), name)
	if err != nil {
		t.Fatalf("CreateDirector(%q) error = %v", name, err)
	}
	return d.ID
}

func (c *testCatalog) genre(t *testing.T, name string) uint {
	t.Helper()
	g, err := c.db.CreateGenre(context.Background(), name)
	if err != nil {
		t.Fatalf("CreateGenre(%q) error = %v", name, err)
	}
	return g.ID
}

func (c *testCatalog) movie(t *testing.T, title string, directorID, genreID *uint) uint {
	t.Helper()
	m := &models.Movie{
		Title:       title,
		Description: title + " description",
		Trailer:     "https://example.com/" + title,
		Year:        2000,
		Rating:      7.1,
		DirectorID:  directorID,
		GenreID:     genreID,
	}
	if err := c.db.CreateMovie(context.Background(), m); err != nil {
		t.Fatalf("CreateMovie(%q) error = %v", title, err)
	}
	return m.ID
}

func ptr(v uint) *uint { return &v }

// assertEmpty fails unless rec has the given status and no body.
func assertEmpty(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	if rec.Code != status {
		t.Errorf("status = %d, want %d (body %q)", rec.Code, status, rec.Body.String())
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

// decodeError decodes an error envelope and checks its status and code.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) APIResponse {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %q)", rec.Code, status, rec.Body.String())
	}
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error body %q: %v", rec.Body.String(), err)
	}
	if resp.Success {
		t.Error("Success = true on error response")
	}
	if resp.Error == nil {
		t.Fatal("Error is nil")
	}
	if resp.Error.Code != code {
		t.Errorf("Error.Code = %q, want %q", resp.Error.Code, code)
	}
	return resp
}

var errStoreDown = errors.New("database is locked")

// failingStore is a CatalogStore whose every call fails.
type failingStore struct {
	err error
}

func (s failingStore) ListMovies(context.Context, models.MovieFilter) ([]models.Movie, error) {
	return nil, s.err
}
func (s failingStore) GetMovie(context.Context, uint) (*models.Movie, error) { return nil, s.err }
func (s failingStore) GetDirector(context.Context, uint) (*models.Director, error) {
	return nil, s.err
}
func (s failingStore) CreateDirector(context.Context, string) (*models.Director, error) {
	return nil, s.err
}
func (s failingStore) UpdateDirector(context.Context, uint, string) error   { return s.err }
func (s failingStore) DeleteDirector(context.Context, uint) error           { return s.err }
func (s failingStore) GetGenre(context.Context, uint) (*models.Genre, error) { return nil, s.err }
func (s failingStore) CreateGenre(context.Context, string) (*models.Genre, error) {
	return nil, s.err
}
func (s failingStore) UpdateGenre(context.Context, uint, string) error { return s.err }
func (s failingStore) DeleteGenre(context.Context, uint) error         { return s.err }
func (s failingStore) Ping(context.Context) error                      { return s.err }

// newFailingRouter returns a router whose store always fails with err.
func newFailingRouter(err error) http.Handler {
	cfg := testConfig()
	return NewRouter(NewHandler(failingStore{err: err}, cfg), &cfg.Security).SetupChi()
}

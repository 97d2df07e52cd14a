// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/movieapi/internal/logging"
)

func TestResponseWriter_Success(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req = req.WithContext(logging.ContextWithRequestID(req.Context(), "req-123"))
	rec := httptest.NewRecorder()

	NewResponseWriter(rec, req).Success(map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("Success = false, want true")
	}
	if resp.Error != nil {
		t.Errorf("Error = %+v, want nil", resp.Error)
	}
	if resp.Meta == nil || resp.Meta.RequestID != "req-123" {
		t.Errorf("Meta = %+v, want request_id req-123", resp.Meta)
	}
}

func TestResponseWriter_SuccessWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status      int
		wantSuccess bool
	}{
		{http.StatusOK, true},
		{http.StatusAccepted, true},
		{http.StatusServiceUnavailable, false},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		NewResponseWriter(rec, httptest.NewRequest(http.MethodGet, "/", nil)).
			SuccessWithStatus(tt.status, map[string]bool{"ready": tt.wantSuccess})

		if rec.Code != tt.status {
			t.Errorf("status = %d, want %d", rec.Code, tt.status)
		}
		var resp APIResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Success != tt.wantSuccess {
			t.Errorf("status %d: Success = %v, want %v", tt.status, resp.Success, tt.wantSuccess)
		}
	}
}

func TestResponseWriter_Entity(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodGet, "/movie/1", nil)).
		Entity(http.StatusOK, map[string]int{"id": 1})

	if got := strings.TrimSpace(rec.Body.String()); got != `{"id":1}` {
		t.Errorf("body = %q, want bare entity", got)
	}
}

func TestResponseWriter_Empty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodGet, "/movie/1", nil)).Empty(http.StatusNotFound)

	assertEmpty(t, rec, http.StatusNotFound)
	if ct := rec.Header().Get("Content-Type"); ct != "" {
		t.Errorf("Content-Type = %q, want none", ct)
	}
}

func TestResponseWriter_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("invalid", nil) }, http.StatusBadRequest, ErrCodeValidationFailed},
		{"too large", func(rw *ResponseWriter) { rw.PayloadTooLarge(16) }, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge},
		{"rate limited", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("boom") }, http.StatusInternalServerError, ErrCodeInternalError},
		{"database", func(rw *ResponseWriter) { rw.DatabaseError(errStoreDown) }, http.StatusInternalServerError, ErrCodeDatabaseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			tt.write(NewResponseWriter(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
			decodeError(t, rec, tt.wantStatus, tt.wantCode)
		})
	}
}

func TestResponseWriter_DatabaseErrorHidesCause(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodGet, "/", nil)).
		DatabaseError(errors.New("pq: password authentication failed for user secret"))

	if strings.Contains(rec.Body.String(), "secret") {
		t.Errorf("body leaks the storage error: %s", rec.Body.String())
	}
}

func TestResponseWriter_PayloadTooLargeDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewResponseWriter(rec, httptest.NewRequest(http.MethodPost, "/director/", nil)).PayloadTooLarge(64)

	resp := decodeError(t, rec, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge)
	details, ok := resp.Error.Details.(map[string]interface{})
	if !ok {
		t.Fatalf("Details = %T, want object", resp.Error.Details)
	}
	if details["limit_bytes"] != float64(64) {
		t.Errorf("limit_bytes = %v, want 64", details["limit_bytes"])
	}
}

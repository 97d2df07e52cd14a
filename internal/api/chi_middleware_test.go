// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/metrics"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	t.Run("nil uses defaults", func(t *testing.T) {
		t.Parallel()
		cfg := ChiMiddlewareConfigFromSecurity(nil)
		if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute {
			t.Errorf("rate limit = %d/%v, want 100/1m", cfg.RateLimitRequests, cfg.RateLimitWindow)
		}
		if len(cfg.CORSAllowedOrigins) != 0 {
			t.Errorf("CORSAllowedOrigins = %v, want empty", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		cfg := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{
			RateLimitReqs:     5,
			RateLimitWindow:   time.Second,
			RateLimitDisabled: true,
			CORSOrigins:       []string{"https://example.com"},
		})
		if cfg.RateLimitRequests != 5 || cfg.RateLimitWindow != time.Second || !cfg.RateLimitDisabled {
			t.Errorf("rate limit = %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "https://example.com" {
			t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("zero limits keep defaults", func(t *testing.T) {
		t.Parallel()
		cfg := ChiMiddlewareConfigFromSecurity(&config.SecurityConfig{})
		if cfg.RateLimitRequests != 100 || cfg.RateLimitWindow != time.Minute {
			t.Errorf("rate limit = %d/%v, want 100/1m", cfg.RateLimitRequests, cfg.RateLimitWindow)
		}
	})
}

func TestChiMiddleware_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	handler := NewChiMiddleware(cfg).RateLimit("ratelimit-test")(okHandler())

	before := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("ratelimit-test"))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movie/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movie/", nil))
	decodeError(t, rec, http.StatusTooManyRequests, ErrCodeTooManyRequests)

	after := testutil.ToFloat64(metrics.APIRateLimitHits.WithLabelValues("ratelimit-test"))
	if after-before != 1 {
		t.Errorf("rate limit hits increased by %v, want 1", after-before)
	}
}

func TestChiMiddleware_RateLimitPerClient(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	handler := NewChiMiddleware(cfg).RateLimit("per-client-test")(okHandler())

	for _, addr := range []string{"192.0.2.1:1000", "192.0.2.2:1000"} {
		req := httptest.NewRequest(http.MethodGet, "/movie/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", addr, rec.Code)
		}
	}
}

func TestChiMiddleware_RateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	handler := NewChiMiddleware(cfg).RateLimitCustom("disabled-test", RateLimitConfig{Requests: 1, Window: time.Minute})(okHandler())

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
}

func TestChiMiddleware_CORS(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	handler := NewChiMiddleware(cfg).CORS()(okHandler())

	t.Run("preflight allowed origin", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodOptions, "/director/", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q", got)
		}
	})

	t.Run("other origin", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/movie/", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want none", got)
		}
	})
}

func TestAPISecurityHeaders(t *testing.T) {
	t.Parallel()

	handler := APISecurityHeaders()(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movie/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	if got := rec.Header().Get("Strict-Transport-Security"); got != "" {
		t.Errorf("HSTS set on plain HTTP: %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/movie/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("Strict-Transport-Security"); got == "" {
		t.Error("HSTS missing behind HTTPS proxy")
	}
}

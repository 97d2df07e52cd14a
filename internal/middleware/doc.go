// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package middleware provides HTTP middleware components for the catalog API.

All middleware uses the standard func(http.Handler) http.Handler shape and is
mounted on the chi router in internal/api.

Key Components:

  - RequestID: reuses X-Request-ID from upstream or generates a UUID, and
    stores it for chi and for the logging package together with a fresh
    correlation ID
  - AccessLog: one zerolog line per request with route, status, size and latency
  - PrometheusMetrics: request count, latency histogram and in-flight gauge,
    labelled by chi route pattern
  - Compression: gzip for clients that accept it; responses without a body
    are left untouched

Middleware Stack:

The router mounts them in this order:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors)
	r.Use(middleware.Compression)

Rate limiting is attached per route group by internal/api.

Label Cardinality:

PrometheusMetrics labels by route pattern ("/movie/{id}"), never by raw path,
so one series exists per route regardless of how many ids are requested.
Requests that match no route share the "unmatched" label.

See Also:

  - internal/api: router and handlers wrapped by this middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware

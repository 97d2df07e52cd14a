// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package metrics provides Prometheus metrics collection for MovieAPI.

Metrics are registered with the default registry through promauto and served
at /metrics by promhttp.

HTTP Metrics:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Database Metrics:
  - db_query_duration_seconds{operation,table}
  - db_query_errors_total{operation,table,error_type}
  - db_open_connections, db_in_use_connections

Catalog Metrics:
  - catalog_mutations_total{entity,operation}
  - catalog_legacy_director_creates_total

The endpoint label is the chi route pattern (for example /movie/{id}), never
the raw path, so label cardinality stays bounded.
*/
package metrics

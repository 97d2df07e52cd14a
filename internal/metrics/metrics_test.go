// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package metrics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("delete", "genre", "constraint"))

	RecordDBQuery("select", "movie", 3*time.Millisecond, nil)
	RecordDBQuery("delete", "genre", time.Millisecond,
		errors.New("FOREIGN KEY constraint failed"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("delete", "genre", "constraint"))
	if after != before+1 {
		t.Errorf("constraint error counter = %v, want %v", after, before+1)
	}

	if n := testutil.CollectAndCount(DBQueryDuration); n == 0 {
		t.Error("expected db_query_duration_seconds to have observations")
	}
}

func TestClassifyDBError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{context.Canceled, "canceled"},
		{fmt.Errorf("list movies: %w", context.DeadlineExceeded), "timeout"},
		{sql.ErrConnDone, "connection"},
		{errors.New(`ERROR: insert or update on table "movie" violates foreign key constraint`), "constraint"},
		{errors.New("database is locked (5) (SQLITE_BUSY)"), "locked"},
		{errors.New("sql: database is closed"), "connection"},
		{errors.New("syntax error"), "other"},
	}

	for _, tt := range tests {
		if got := classifyDBError(tt.err); got != tt.want {
			t.Errorf("classifyDBError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/movie/{id}", "404")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/movie/{id}", "404", 2*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("api_requests_total = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests after dec = %v, want %v", got, before)
	}
}

func TestRecordCatalogMutation(t *testing.T) {
	counter := CatalogMutations.WithLabelValues("director", "update")
	before := testutil.ToFloat64(counter)

	RecordCatalogMutation("director", "update")

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("catalog_mutations_total = %v, want %v", got, before+1)
	}
}

func TestRecordDBPoolStats(t *testing.T) {
	RecordDBPoolStats(sql.DBStats{OpenConnections: 4, InUse: 1})

	if got := testutil.ToFloat64(DBOpenConnections); got != 4 {
		t.Errorf("db_open_connections = %v, want 4", got)
	}
	if got := testutil.ToFloat64(DBInUseConnections); got != 1 {
		t.Errorf("db_in_use_connections = %v, want 1", got)
	}
}

func TestSetDBUp(t *testing.T) {
	SetDBUp(true)
	if v := testutil.ToFloat64(DBUp); v != 1 {
		t.Errorf("db_up = %v, want 1", v)
	}
	SetDBUp(false)
	if v := testutil.ToFloat64(DBUp); v != 0 {
		t.Errorf("db_up = %v, want 0", v)
	}
}

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package database provides catalog storage for MovieAPI on top of GORM.

Two dialects are supported:

  - sqlite (default): pure-Go driver, a single file such as test.db, or
    :memory: for tests. Foreign keys are switched on for every connection.
  - postgres: pgx connection pool exposed to GORM through pgx/stdlib.

The schema (movie, director, genre) is created by AutoMigrate when the
database is opened. movie.director_id and movie.genre_id are nullable foreign
keys declared ON DELETE SET NULL, so removing a director or genre keeps the
movies that referenced it.

Every method takes a context.Context and issues a single statement, or a
lookup followed by one write. A missing row is reported as an error wrapping
ErrNotFound:

	director, err := db.GetDirector(ctx, id)
	if errors.Is(err, database.ErrNotFound) {
	    // 404
	}

Each call records its latency and failures in the db_query_* Prometheus
metrics, and GORM's own log output goes through the zerolog logger with the
request ID from ctx.
*/
package database

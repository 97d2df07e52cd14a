// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package main is the entry point for the MovieAPI server.

# Commands

	movieapi [--config FILE]          same as serve
	movieapi serve [--config FILE]    run the HTTP API until SIGINT/SIGTERM
	movieapi seed [--config FILE]     insert the sample catalog and exit

# Startup

serve initializes components in this order:

 1. Configuration: defaults, then config.yaml (or --config / CONFIG_PATH), then environment (Koanf v2)
 2. Logging: zerolog from the logging section
 3. Database: SQLite or PostgreSQL through GORM, schema migrated on open
 4. Sample data: when SEED_SAMPLE_DATA=true and the catalog is empty
 5. HTTP router: chi with request ID, access log, metrics, CORS, gzip and rate limiting
 6. Supervisor tree: database monitor and HTTP server under Suture v4

# Configuration

Common environment variables:

	DB_DRIVER=sqlite|postgres     storage engine (default sqlite)
	DB_PATH=test.db               SQLite file, or :memory:
	DATABASE_URL=postgres://...   PostgreSQL DSN
	HTTP_HOST, HTTP_PORT          listen address (default 0.0.0.0:8080)
	LOG_LEVEL, LOG_FORMAT         info/json by default

	API_EMPTY_LIST_NOT_FOUND=true             empty movie list answers 404
	COMPAT_DIRECTOR_CREATE_WRITES_GENRE=true  POST /director/ stores a genre

# Signal Handling

SIGINT and SIGTERM cancel the supervisor context. The HTTP server stops
accepting connections and waits up to HTTP_SHUTDOWN_TIMEOUT for in-flight
requests, then the database is closed.

# Example Usage

	DB_PATH=/var/lib/movieapi/catalog.db movieapi seed
	DB_PATH=/var/lib/movieapi/catalog.db movieapi serve

	DB_DRIVER=postgres DATABASE_URL=postgres://movieapi:secret@db/movieapi movieapi
*/
package main

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to start a real PostgreSQL server so the
// catalog storage layer can be exercised against the production dialect:
//
//	func TestCatalogPostgres(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//
//	    pg := testinfra.StartPostgres(t)
//	    db, err := database.New(&config.DatabaseConfig{
//	        Driver: config.DriverPostgres,
//	        DSN:    pg.DSN,
//	    })
//	    // ...
//	}
//
// The container is terminated automatically when the test finishes.
//
// # Build Tag
//
// Every helper is compiled only with the integration build tag:
//
//	go test -tags integration ./...
//
// Tests are skipped gracefully if Docker is unavailable. The first run may
// need to download the postgres image.
package testinfra

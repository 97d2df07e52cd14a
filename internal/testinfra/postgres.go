// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// PostgresImage is the image used for catalog integration tests.
	PostgresImage = "postgres:16-alpine"

	postgresDatabase = "movieapi"
	postgresUser     = "movieapi"
	postgresPassword = "movieapi"
)

// PostgresContainer is a running PostgreSQL server for a single test.
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DSN       string
}

// StartPostgres starts a PostgreSQL container and registers its termination
// with t.Cleanup. The test fails immediately if the server does not become ready.
func StartPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		PostgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUser),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithLogger(NewContainerLogger(t)),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		CleanupContainer(t, context.Background(), container)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}

	return &PostgresContainer{Container: container, DSN: dsn}
}

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/database"
	"github.com/tomtom215/movieapi/internal/models"
)

// useConfigFlag sets --config for one test and restores the environment
// variable loadConfig exports.
func useConfigFlag(t *testing.T, path string) {
	t.Helper()
	t.Setenv(config.ConfigPathEnvVar, "")
	configPath = path
	t.Cleanup(func() { configPath = "" })
}

func TestLoadConfig_FromFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movieapi.yaml")
	yaml := "server:\n  port: 9091\napi:\n  empty_list_not_found: false\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	useConfigFlag(t, path)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Server.Port != 9091 {
		t.Errorf("Server.Port = %d, want 9091", cfg.Server.Port)
	}
	if cfg.API.EmptyListNotFound {
		t.Error("API.EmptyListNotFound = true, want false from file")
	}
	if os.Getenv(config.ConfigPathEnvVar) != path {
		t.Errorf("%s = %q, want %q", config.ConfigPathEnvVar, os.Getenv(config.ConfigPathEnvVar), path)
	}
}

func TestLoadConfig_MissingFlagFile(t *testing.T) {
	useConfigFlag(t, filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() error = nil for a missing --config file")
	}
}

func TestLoadConfig_InvalidEnvironment(t *testing.T) {
	useConfigFlag(t, "")
	t.Setenv("DB_DRIVER", "oracle")

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() error = nil for an unsupported driver")
	}
}

func TestSeedCommand(t *testing.T) {
	useConfigFlag(t, "")
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	t.Setenv("DB_PATH", dbPath)

	rootCmd.SetArgs([]string{"seed"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("seed error = %v", err)
	}

	db, err := database.New(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: dbPath})
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	movies, err := db.ListMovies(context.Background(), models.MovieFilter{})
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}
	if len(movies) == 0 {
		t.Fatal("seed inserted no movies")
	}

	// Running it again leaves the catalog as it was.
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("second seed error = %v", err)
	}
	again, err := db.ListMovies(context.Background(), models.MovieFilter{})
	if err != nil {
		t.Fatalf("ListMovies() error = %v", err)
	}
	if len(again) != len(movies) {
		t.Errorf("movies after second seed = %d, want %d", len(again), len(movies))
	}
}

func TestSeedCommand_RejectsArgs(t *testing.T) {
	useConfigFlag(t, "")
	rootCmd.SetArgs([]string{"seed", "extra"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err == nil {
		t.Error("seed accepted a positional argument")
	}
}

// freePort reserves an ephemeral port and releases it for the server to bind.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	_ = ln.Close()
	return port
}

func TestServeCommand_ReturnsOnCancel(t *testing.T) {
	useConfigFlag(t, "")
	port := freePort(t)
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", strconv.Itoa(port))
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "2s")

	rootCmd.SetArgs([]string{"serve"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- rootCmd.ExecuteContext(ctx) }()

	liveURL := "http://127.0.0.1:" + strconv.Itoa(port) + "/health/live"
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(10 * time.Second)
	for {
		resp, err := client.Get(liveURL)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				break
			}
		}
		if time.Now().After(deadline) {
			cancel()
			t.Fatalf("server did not become live: %v", err)
		}
		select {
		case err := <-done:
			t.Fatalf("serve returned before shutdown: %v", err)
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("serve error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return after the context was canceled")
	}

	if _, err := client.Get(liveURL); err == nil {
		t.Error("server still accepting connections after serve returned")
	}
}

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/database"
	"github.com/tomtom215/movieapi/internal/logging"
)

// configPath is the --config flag value.
var configPath string

var rootCmd = &cobra.Command{
	Use:   "movieapi",
	Short: "Movie catalog REST service",
	Long: `MovieAPI serves a catalog of movies with their directors and genres
over HTTP. Running it without a subcommand is the same as "movieapi serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to a YAML config file (overrides "+config.ConfigPathEnvVar+")")
}

// loadConfig applies --config, loads the layered configuration and
// initializes the global logger from it.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		if err := os.Setenv(config.ConfigPathEnvVar, configPath); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", config.ConfigPathEnvVar, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	return cfg, nil
}

// openDatabase opens the configured database.
func openDatabase(cfg *config.Config) (*database.DB, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

// closeDatabase closes db, logging instead of returning the error.
func closeDatabase(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}

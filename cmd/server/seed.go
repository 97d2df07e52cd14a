// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package main

import (
	"github.com/spf13/cobra"

	"github.com/tomtom215/movieapi/internal/logging"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample catalog",
	Long: `Open the configured database, create the schema if needed and insert
the sample directors, genres and movies. A catalog that already has movies
is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if err := db.SeedSampleData(cmd.Context()); err != nil {
		return err
	}

	logging.Info().Str("driver", cfg.Database.Driver).Msg("Seed complete")
	return nil
}

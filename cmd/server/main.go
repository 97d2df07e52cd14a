// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package main

import (
	"os"

	_ "github.com/tomtom215/movieapi/docs" // Import generated swagger docs
	"github.com/tomtom215/movieapi/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

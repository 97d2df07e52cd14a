// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/movieapi/internal/api"
	"github.com/tomtom215/movieapi/internal/config"
	"github.com/tomtom215/movieapi/internal/logging"
	"github.com/tomtom215/movieapi/internal/supervisor"
	"github.com/tomtom215/movieapi/internal/supervisor/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server under the supervisor tree and run until
SIGINT or SIGTERM. In-flight requests get server.shutdown_timeout to finish.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logging.Info().
		Str("driver", cfg.Database.Driver).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting MovieAPI")

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	if cfg.Database.SeedSampleData {
		logging.Info().Msg("Sample data seeding enabled (SEED_SAMPLE_DATA=true)")
		if err := db.SeedSampleData(cmd.Context()); err != nil {
			return err
		}
	}

	logStartupWarnings(cfg)

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, &cfg.Security)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	tree.AddDataService(services.NewDBMonitorService(db, services.DefaultDBMonitorInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, "", cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground sends exactly one value and never closes errCh.
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for services to stop")
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("MovieAPI stopped")
	return nil
}

// logStartupWarnings reports configuration that changes client-visible
// behavior or weakens protections.
func logStartupWarnings(cfg *config.Config) {
	if cfg.Compat.DirectorCreateWritesGenre {
		logging.Warn().Msg("POST /director/ stores the name as a genre (COMPAT_DIRECTOR_CREATE_WRITES_GENRE=true)")
	}
	if cfg.API.EmptyListNotFound {
		logging.Info().Msg("Empty movie lists answer 404 (API_EMPTY_LIST_NOT_FOUND=true)")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.IsProduction() && len(cfg.Security.CORSOrigins) == 1 && cfg.Security.CORSOrigins[0] == "*" {
		logging.Warn().Msg("CORS allows any origin in production (CORS_ORIGINS=*)")
	}
}

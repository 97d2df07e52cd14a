// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package supervisor provides Suture v4 process supervision for the service.

The tree has two layers under a root supervisor:

	movieapi (root)
	├── data-layer
	│   └── db-monitor    periodic database ping, db_up gauge
	└── api-layer
	    └── http-server   chi router behind net/http

Each layer restarts its own services with the configured failure threshold
and backoff. Supervisor events go to the zerolog logger through sutureslog
and the logging package's slog adapter.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDBMonitorService(db, 0))
	tree.AddAPIService(services.NewHTTPServerService(server, "", cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

Canceling ctx stops the HTTP server gracefully (in-flight requests get the
shutdown timeout) and then the monitor. UnstoppedServiceReport lists any
service that did not stop in time.
*/
package supervisor

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

// Package services adapts long-running components to suture.Service.
//
// HTTPServerService turns http.Server's blocking ListenAndServe into a
// context-aware Serve with graceful Shutdown. DBMonitorService pings the
// database on an interval and publishes the db_up gauge.
package services

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package api

import (
	"context"
	"net/http"
	"time"
)

// readinessTimeout bounds the database ping of the readiness probe.
const readinessTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK as long as the process is serving HTTP.
//
// @Summary Kubernetes liveness probe
// @Description Returns 200 OK if the service is alive. Does not check dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} api.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the database answers a ping.
//
// @Summary Kubernetes readiness probe
// @Description Returns 200 OK only if the database is reachable. Returns 503 if not ready.
// @Tags Health
// @Produce json
// @Success 200 {object} api.APIResponse "Service is ready"
// @Failure 503 {object} api.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	dbConnected := h.store != nil && h.store.Ping(ctx) == nil

	statusCode := http.StatusOK
	status := "ready"
	if !dbConnected {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	NewResponseWriter(w, r).SuccessWithStatus(statusCode, map[string]interface{}{
		"status":             status,
		"database_connected": dbConnected,
		"uptime":             time.Since(h.startTime).Seconds(),
	})
}

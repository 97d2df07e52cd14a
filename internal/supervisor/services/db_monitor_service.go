// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package services

import (
	"context"
	"time"

	"github.com/tomtom215/movieapi/internal/logging"
	"github.com/tomtom215/movieapi/internal/metrics"
)

const (
	// DefaultDBMonitorInterval is how often the database is pinged.
	DefaultDBMonitorInterval = 15 * time.Second

	dbPingTimeout = 5 * time.Second
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DBMonitorService pings the database on an interval, publishing db_up
// and the connection pool gauges, and logs when the database goes down or
// comes back. It never returns an error for a failed ping; the readiness
// probe reports the outage to orchestrators.
type DBMonitorService struct {
	db       Pinger
	interval time.Duration
	now      func() time.Time

	healthy   bool
	downSince time.Time
}

// NewDBMonitorService creates a monitor for db. A non-positive interval uses
// DefaultDBMonitorInterval.
func NewDBMonitorService(db Pinger, interval time.Duration) *DBMonitorService {
	if interval <= 0 {
		interval = DefaultDBMonitorInterval
	}
	return &DBMonitorService{
		db:       db,
		interval: interval,
		now:      time.Now,
		healthy:  true,
	}
}

// Serve implements suture.Service.
func (s *DBMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// check runs one ping and records the result.
func (s *DBMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	err := s.db.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		// Shutting down; a canceled ping says nothing about the database.
		return
	}

	metrics.SetDBUp(err == nil)

	switch {
	case err != nil && s.healthy:
		s.healthy = false
		s.downSince = s.now()
		logging.Error().Err(err).Msg("Database health check failed")
	case err == nil && !s.healthy:
		s.healthy = true
		logging.Info().
			Dur("downtime", s.now().Sub(s.downSince)).
			Msg("Database health check recovered")
	}
}

// Healthy reports the result of the most recent check. It is only safe to
// call from the goroutine running Serve, or after Serve has returned.
func (s *DBMonitorService) Healthy() bool {
	return s.healthy
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *DBMonitorService) String() string {
	return "db-monitor"
}

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Database: GORM dialect, connection pool, sample data seeding
//     - Server: HTTP server configuration (port, host, timeouts)
//
//  2. API behaviour:
//     - API: empty list handling and request body limits
//     - Compat: legacy behaviour switches kept for client compatibility
//
//  3. Security:
//     - Security: CORS origins and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Compat   CompatConfig   `koanf:"compat"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds storage settings.
//
// Environment Variables:
//   - DB_DRIVER: sqlite or postgres (default: sqlite)
//   - DB_PATH: SQLite database file (default: test.db)
//   - DATABASE_URL: PostgreSQL connection string (required for postgres)
//   - DB_MAX_OPEN_CONNS / DB_MAX_IDLE_CONNS / DB_CONN_MAX_LIFETIME: pool tuning
//   - DB_LOG_QUERIES: trace every SQL statement at debug level
//   - SEED_SAMPLE_DATA: insert the sample catalog on startup
type DatabaseConfig struct {
	Driver          string        `koanf:"driver"`
	Path            string        `koanf:"path"`
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	LogQueries      bool          `koanf:"log_queries"`
	SeedSampleData  bool          `koanf:"seed_sample_data"` // Insert sample directors, genres and movies when empty
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
}

// APIConfig holds response behaviour settings for the resource endpoints.
type APIConfig struct {
	// EmptyListNotFound makes GET /movie/ answer 404 with an empty body when
	// no movie matches. When false an empty JSON array is returned with 200.
	// Default: true
	EmptyListNotFound bool `koanf:"empty_list_not_found"`

	// MaxBodyBytes caps request bodies on mutating endpoints.
	// Default: 1 MiB
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// CompatConfig holds switches that reproduce legacy behaviour existing
// clients may depend on.
type CompatConfig struct {
	// DirectorCreateWritesGenre makes POST /director/ insert a Genre row
	// instead of a Director row, matching the legacy service.
	// Default: true
	DirectorCreateWritesGenre bool `koanf:"director_create_writes_genre"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: Minimum log level (trace, debug, info, warn, error)
//   - LOG_FORMAT: Output format (json, console)
//   - LOG_CALLER: Include caller information (true, false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, config file and environment.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

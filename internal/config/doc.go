// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package config provides centralized configuration management for MovieAPI.

Configuration is layered with Koanf v2: struct defaults first, then an optional
YAML file, then environment variables. The result is validated before use.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production

Database:
  - DB_DRIVER: sqlite (default) or postgres
  - DB_PATH: SQLite file (default: test.db)
  - DATABASE_URL: PostgreSQL DSN
  - SEED_SAMPLE_DATA: Seed the sample catalog at startup

API:
  - API_EMPTY_LIST_NOT_FOUND: 404 on an empty movie list (default: true)
  - COMPAT_DIRECTOR_CREATE_WRITES_GENRE: POST /director/ inserts a genre (default: true)

Security and Logging:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Server.Addr())
*/
package config

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

// Package main provides the MovieAPI HTTP server
//
// @title MovieAPI
// @version 1.0
// @description Movie catalog REST service: movies with their directors and genres.
// @description
// @description ## Responses
// @description
// @description Catalog reads return the movie or movie array as bare JSON.
// @description Mutations answer 200 or 201 with an empty body.
// @description Unknown ids answer 404 with an empty body.
// @description
// @description ## Error Responses
// @description
// @description Input, rate limit and storage errors use this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "name is required",
// @description     "details": {"field": "name", "tag": "required"},
// @description     "request_id": "5f0c..."
// @description   },
// @description   "meta": {"timestamp": "2026-01-01T12:00:00Z"}
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/movieapi/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Movies
// @tag.description Movie catalog reads
//
// @tag.name Directors
// @tag.description Director mutations
//
// @tag.name Genres
// @tag.description Genre mutations
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main

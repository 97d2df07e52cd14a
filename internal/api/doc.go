// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package api provides the HTTP REST API layer for the movie catalog.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: catalog, health and operational handlers over a CatalogStore
  - ResponseWriter: JSON envelopes for errors and health, bare JSON for entities
  - ChiMiddleware: CORS (go-chi/cors) and per-group rate limiting (go-chi/httprate)

Endpoints:

	GET    /movie/            list movies, optional ?director_id= and ?genre_id=
	GET    /movie/{id}        one movie
	POST   /director/         create from {"name": ...}
	PUT    /director/{id}     rename
	DELETE /director/{id}     delete; movies keep a null director_id
	PUT    /genre/{id}        rename
	DELETE /genre/{id}        delete; movies keep a null genre_id
	GET    /health/live       liveness
	GET    /health/ready      readiness (database ping)
	GET    /metrics           Prometheus exposition
	GET    /swagger/*         OpenAPI UI

Response Conventions:

Catalog reads return the entity or array as bare JSON. Mutations answer
200 or 201 with an empty body. A missing id, a non-numeric id and any
unknown path answer 404 with an empty body. An empty movie list is also
a 404 unless api.empty_list_not_found is disabled.

Everything else that fails uses the APIResponse envelope:

	{"success": false, "error": {"code": "VALIDATION_ERROR", "message": "...", "request_id": "..."}}

Codes are BAD_REQUEST (undecodable body or unknown field), VALIDATION_ERROR
(missing name, non-integer filter), PAYLOAD_TOO_LARGE, TOO_MANY_REQUESTS and
DATABASE_ERROR. Storage error text is logged, never returned.

Compatibility:

With compat.director_create_writes_genre enabled (the default), POST
/director/ stores the name as a Genre. Each such request increments
catalog_legacy_director_creates_total so operators can see whether
clients depend on it before turning it off.

Usage Example:

	db, _ := database.New(&cfg.Database)
	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, &cfg.Security)
	http.ListenAndServe(":8080", router.SetupChi())

See Also:

  - internal/database: CatalogStore implementation
  - internal/middleware: request ID, access log, metrics and gzip middleware
  - internal/validation: request body decoding and validation
*/
package api

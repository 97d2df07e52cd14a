// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

/*
Package models defines the catalog entities and request payloads for MovieAPI.

Entities double as GORM models and as their flat JSON representation:
relationship fields are tagged json:"-" so a movie serializes with its
foreign keys only, never with nested director or genre objects.

Entities:

  - Movie: title, description, trailer URL, year, rating and the nullable
    genre_id / director_id foreign keys
  - Director: id and name
  - Genre: id and name

Request payloads:

  - NameInput: body accepted by the director and genre mutation endpoints
  - MovieFilter: optional exact-match filters for the movie list
*/
package models

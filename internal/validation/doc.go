// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

// Package validation provides request body decoding and struct validation
// using go-playground/validator v10.
//
// The package keeps a thread-safe singleton validator (struct info is cached
// after first use) created with WithRequiredStructEnabled. Field names in
// errors come from json tags, so a failure on models.NameInput reports
// "name", not "Name".
//
// # Quick Start
//
//	var in models.NameInput
//	err := validation.DecodeJSON(r.Body, &in)
//
//	var decErr *validation.DecodeError
//	var valErr *validation.RequestValidationError
//	switch {
//	case errors.As(err, &decErr):
//	    // malformed JSON, wrong type or unknown field: 400 BAD_REQUEST
//	case errors.As(err, &valErr):
//	    apiErr := valErr.ToAPIError() // 400 VALIDATION_ERROR
//	}
//
// # Error Format
//
// ToAPIError produces the VALIDATION_ERROR envelope used by the api package.
// A single failure carries field, tag and value in Details; several failures
// are listed under Details["fields"].
//
// Query parameter checks that are not expressed as struct tags use
// NewFieldError so they render the same way.
package validation

// MovieAPI - Movie Catalog REST Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movieapi

package validation

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrEmptyBody is returned by DecodeJSON when the body contains no JSON value.
var ErrEmptyBody = errors.New("request body is empty")

// ErrTrailingData is returned by DecodeJSON when anything other than
// whitespace follows the first JSON value.
var ErrTrailingData = errors.New("request body must contain a single JSON object")

// DecodeError reports a request body that could not be decoded into the
// target struct: malformed JSON, a wrong value type, or an unknown field.
type DecodeError struct {
	err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.err)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

// DecodeJSON decodes a single JSON object from r into dst, rejecting fields
// dst does not declare, and then validates dst.
//
// The returned error is a *DecodeError when the body is unusable and a
// *RequestValidationError when it decoded but failed validation.
func DecodeJSON(r io.Reader, dst interface{}) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return &DecodeError{err: ErrEmptyBody}
		}
		return &DecodeError{err: err}
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return &DecodeError{err: ErrTrailingData}
	}

	if verr := ValidateStruct(dst); verr != nil {
		return verr
	}
	return nil
}

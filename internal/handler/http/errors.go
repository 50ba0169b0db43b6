// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is logged when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingFormat is returned by the import endpoint when the format
	// query parameter is absent.
	ErrMissingFormat = errors.New("`format` query parameter is required")
)

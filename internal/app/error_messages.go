// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-pass-gen HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails validation (e.g. a length above the configured maximum).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError replaces the text of any error that maps to
	// 500, so storage details never reach the response body.
	MsgInternalServerError = "internal server error"

	// MsgInvalidGzipData is returned when a request declares
	// Content-Encoding: gzip but its body is not a valid gzip stream.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgTooManyRequests is returned by the breach endpoint once a client
	// exceeds its lookup budget.
	MsgTooManyRequests = "too many breach lookups, retry later"

	// MsgCannotReadBody is returned when the request body cannot be read
	// to the end.
	MsgCannotReadBody = "error reading request body"
)

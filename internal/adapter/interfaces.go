// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for outbound calls
// made by go-pass-gen.
//
// The primary abstraction is [BreachRangeAdapter], which decouples the
// breach service from the k-anonymity range endpoint. The package ships an
// HTTP implementation ([NewHTTPBreachAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrTooManyRequests] for 429).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BreachRangeAdapter fetches one k-anonymity range: every known hash suffix
// that shares the given 5-character prefix, with its breach occurrence count.
//
// Only the prefix leaves the process. Implementations return suffixes in
// upper case so callers can look them up directly.
type BreachRangeAdapter interface {
	// Range returns the suffix to count table for prefix. A prefix that is not
	// exactly five hex characters yields [ErrInvalidPrefix] without any network
	// call. Padding entries with a zero count may be present in the result.
	Range(ctx context.Context, prefix string) (map[string]int, error)
}

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or non-positive rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN on the client).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidBreachConfigs indicates an unusable breach range endpoint
	// (for example, a base URL without http or https scheme).
	ErrInvalidBreachConfigs = errors.New("invalid breach configuration")
	// ErrInvalidGeneratorConfigs indicates non-positive generator bounds.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
)

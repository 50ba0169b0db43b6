// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-gen binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON or TOML file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network, timeout and rate limit settings for the HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds configuration for the preset store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Breach holds settings of the k-anonymity breach range endpoint.
	Breach Breach `envPrefix:"BREACH_"`

	// Generator holds upper bounds enforced on incoming generation configs.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON or TOML configuration file.
	// The format is picked by file extension (".toml" selects TOML).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BreachRateLimit is the sustained number of breach lookups per second
	// the API forwards to the range endpoint.
	// Env: SERVER_BREACH_RATE_LIMIT
	BreachRateLimit float64 `env:"BREACH_RATE_LIMIT"`

	// BreachRateBurst is the token bucket size of the breach rate limiter.
	// Env: SERVER_BREACH_RATE_BURST
	BreachRateBurst int `env:"BREACH_RATE_BURST"`
}

// Storage groups the configuration of the preset store.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend by form: a "postgres://" or "postgresql://"
	// URL opens PostgreSQL, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Breach holds settings of the breach range endpoint client.
type Breach struct {
	// BaseURL of the range API; requests go to {BaseURL}/range/{prefix}.
	// Env: BREACH_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds a single range request.
	// Env: BREACH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: BREACH_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// DisablePadding turns off the Add-Padding request header.
	// Env: BREACH_DISABLE_PADDING
	DisablePadding bool `env:"DISABLE_PADDING"`
}

// Generator holds the bounds enforced by the validators on generation
// configs coming from the API, the TUI or the CLI.
type Generator struct {
	// Env: GENERATOR_MAX_LENGTH
	MaxLength int `env:"MAX_LENGTH"`
	// Env: GENERATOR_MAX_BULK_COUNT
	MaxBulkCount int `env:"MAX_BULK_COUNT"`
	// Env: GENERATOR_MAX_WORD_COUNT
	MaxWordCount int `env:"MAX_WORD_COUNT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (a .env file in the working directory is loaded first)
//  2. Command-line flags
//  3. JSON or TOML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		withDefaults().
		build()
}

// GetEnvConfig is [GetStructuredConfig] without the command-line flag source,
// for binaries that define their own flags.
func GetEnvConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFile().
		withDefaults().
		build()
}

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables, with an optional .env file loaded first
//  2. Command-line flags
//  3. JSON or TOML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server,
// [GetClientConfig] for the terminal client and [GetEnvConfig] for binaries
// that parse their own flags.
package config

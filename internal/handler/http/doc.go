// Package http implements the HTTP transport layer of go-pass-gen.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Request tracing, access logging, response compression, request
// timeouts and the breach endpoint rate limit are handled in this package
// before requests are delegated to the service layer.
package http

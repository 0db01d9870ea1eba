// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber application from Config: the listen address,
// the API key checked by the auth middleware and the per-request timeout applied
// to duplicate checks.
package server

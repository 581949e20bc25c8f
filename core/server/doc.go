// Package server holds the HTTP server configuration.
//
// While cmd/start handles the server startup, this package defines the
// listen port, the API key that protects every route, the upload size limit
// and the default presigned URL lifetime.
//
// # Usage
//
// This package is embedded by core/config and read by the start command and
// the objects feature.
package server

// Package server holds the HTTP server configuration and error mapping.
//
// While the start command handles the server startup, this package defines the
// configuration structure and the translation of storage errors into HTTP responses.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the upload body limit.
//
// # Errors
//
// StatusFor maps ErrInvalidArgument to 400, passes remote 4xx statuses through and
// reports every other remote failure as 502. Error writes the JSON error body.
package server

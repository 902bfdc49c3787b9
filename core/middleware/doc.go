// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation (X-API-Key) protecting every endpoint when a key is configured.
//   - RayID: assigns a Request ID (RayID) to every incoming request, injecting it into
//     the context and the X-Ray-ID response header for tracing.
package middleware

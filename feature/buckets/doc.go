// Package buckets implements bucket management.
//
// The Service logs the outcome of every call against the storage client; the Handler
// exposes it over HTTP and the CLI's bucket commands call the Service directly.
//
// # HTTP Endpoints
//
//   - GET /buckets : List buckets.
//   - POST /buckets/:bucket : Create a bucket (supports ?secure=true).
//   - DELETE /buckets/:bucket : Delete an empty bucket.
//   - GET /buckets/:bucket/public-access-block : Read the public access block.
//   - PUT /buckets/:bucket/public-access-block : Enable all four block flags.
package buckets

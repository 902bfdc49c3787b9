// Package objects implements object management inside a bucket.
//
// # Components
//
//   - Service: copy, batch delete, all-versions purge, file upload/download,
//     streaming put/get, folder markers, presigned URLs and listings. Every failure is
//     logged before it is returned.
//   - Handler: exposes the Service over HTTP; JSON bodies are checked with validator.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /buckets/:bucket/objects : List keys (?urls=true&endpoint=... for URLs).
//   - GET /buckets/:bucket/objects/* : Download an object.
//   - PUT /buckets/:bucket/objects/* : Upload the multipart "file" field.
//   - POST /buckets/:bucket/delete : Delete keys ({"keys": [...], "all_versions": true}).
//   - POST /buckets/:bucket/copy : Server-side copy into the bucket.
//   - POST /buckets/:bucket/folders : Create a "path/" marker object.
//   - GET /buckets/:bucket/presign/* : Presigned GET URL (?expires=seconds).
package objects

// Package storage provides the client for S3-compatible object storage services.
//
// It wraps two SDK handles built from the same endpoint and credentials:
// the aws-sdk-go-v2 S3 client as the low-level request handle (API) and the
// MinIO Go client as the higher-level resource handle (Resource). This supports
// Backblaze B2, AWS S3 and self-hosted MinIO instances.
//
// # Handles
//
// The API and Resource interfaces make it easy to mock storage interactions for
// unit testing (see core/storage/mocks). Use New to build a Client around mocks
// and NewClient to build one from configuration.
//
// # Operations
//
//   - Buckets: ListBuckets, CreateBucket (optionally secured), DeleteBucket.
//   - Access: SetPublicAccessBlock, PublicAccessBlock.
//   - Objects: CopyObject, DeleteObjects, DeleteObjectAllVersions, CreateFolder.
//   - Transfer: UploadFile, DownloadFile, PutObject, GetObject.
//   - Listing: ListObjectKeys, ListObjectURLs, ListObjectVersions.
//   - PresignedURL: time-limited signed GET URLs.
//
// # Errors
//
// Local validation failures wrap ErrInvalidArgument. Every failed remote call is
// returned as a *RemoteServiceError carrying the S3 error code and HTTP status.
//
// # Usage
//
//	client, err := storage.NewClient(ctx, cfg.Storage, logger)
//	keys, err := client.ListObjectKeys(ctx, "assets")
package storage

package objects

import (
	"context"
	"io"
	"time"

	"bucket-manager/core/storage"

	"go.uber.org/zap"
)

// Service handles object level operations and reports their outcome in the log.
type Service struct {
	client *storage.Client
	logger *zap.Logger
}

// NewService creates a new object service.
func NewService(client *storage.Client, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Copy copies srcBucket/srcKey to dstBucket/dstKey on the server.
func (s *Service) Copy(ctx context.Context, srcBucket, dstBucket, srcKey, dstKey string) error {
	l := s.logger.With(
		zap.String("source", srcBucket+"/"+srcKey),
		zap.String("destination", dstBucket+"/"+dstKey),
	)
	if err := s.client.CopyObject(ctx, srcBucket, dstBucket, srcKey, dstKey); err != nil {
		l.Error("Failed to copy object", zap.Error(err))
		return err
	}
	l.Info("Copied object")
	return nil
}

// Delete removes keys in a single batch.
func (s *Service) Delete(ctx context.Context, bucket string, keys []string) error {
	l := s.logger.With(zap.String("bucket", bucket), zap.Strings("keys", keys))
	if err := s.client.DeleteObjects(ctx, bucket, keys); err != nil {
		l.Error("Failed to delete objects", zap.Error(err))
		return err
	}
	l.Info("Deleted objects")
	return nil
}

// Purge permanently removes every version and delete marker of keys.
func (s *Service) Purge(ctx context.Context, bucket string, keys []string) ([]storage.ObjectVersion, error) {
	deleted, err := s.client.DeleteObjectAllVersions(ctx, bucket, keys)
	for _, v := range deleted {
		s.logger.Info("Deleted object version",
			zap.String("bucket", bucket),
			zap.String("key", v.Key),
			zap.String("version_id", v.VersionID),
			zap.Bool("delete_marker", v.IsDeleteMarker),
		)
	}
	if err != nil {
		s.logger.Error("Failed to delete object versions", zap.String("bucket", bucket), zap.Strings("keys", keys), zap.Error(err))
		return deleted, err
	}
	return deleted, nil
}

// Upload uploads a local file. An empty key uses the file's base name.
func (s *Service) Upload(ctx context.Context, bucket, localPath, key string) (storage.UploadResult, error) {
	result, err := s.client.UploadFile(ctx, bucket, localPath, key)
	if err != nil {
		s.logger.Error("Failed to upload file", zap.String("bucket", bucket), zap.String("path", localPath), zap.Error(err))
		return storage.UploadResult{}, err
	}
	s.logger.Info("Uploaded file",
		zap.String("bucket", bucket),
		zap.String("path", localPath),
		zap.String("key", result.Key),
		zap.Int64("size", result.Size),
	)
	return result, nil
}

// Download downloads key into localPath (or into the key itself when empty).
func (s *Service) Download(ctx context.Context, bucket, key, localPath string) (string, error) {
	path, err := s.client.DownloadFile(ctx, bucket, key, localPath)
	if err != nil {
		s.logger.Error("Failed to download file", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return "", err
	}
	s.logger.Info("Downloaded file", zap.String("bucket", bucket), zap.String("key", key), zap.String("path", path))
	return path, nil
}

// Put uploads an object from a stream.
func (s *Service) Put(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (storage.UploadResult, error) {
	result, err := s.client.PutObject(ctx, bucket, key, r, size, contentType)
	if err != nil {
		s.logger.Error("Failed to put object", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return storage.UploadResult{}, err
	}
	s.logger.Info("Stored object", zap.String("bucket", bucket), zap.String("key", key), zap.Int64("size", result.Size))
	return result, nil
}

// Get opens an object for streaming. The caller must close it.
func (s *Service) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	rc, err := s.client.GetObject(ctx, bucket, key)
	if err != nil {
		s.logger.Error("Failed to get object", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return nil, err
	}
	return rc, nil
}

// CreateFolder creates a "path/" marker object and returns its key.
func (s *Service) CreateFolder(ctx context.Context, bucket, path string) (string, error) {
	key, err := s.client.CreateFolder(ctx, bucket, path)
	if err != nil {
		s.logger.Error("Failed to create folder", zap.String("bucket", bucket), zap.String("folder", path), zap.Error(err))
		return "", err
	}
	s.logger.Info("Created folder", zap.String("bucket", bucket), zap.String("key", key))
	return key, nil
}

// Presign returns a signed GET URL and the lifetime it was signed for.
// A non-positive expiry uses the configured default.
func (s *Service) Presign(ctx context.Context, bucket, key string, expires time.Duration) (string, time.Duration, error) {
	expires = s.client.PresignExpiry(expires)
	u, err := s.client.PresignedURL(ctx, bucket, key, expires)
	if err != nil {
		s.logger.Error("Failed to presign object", zap.String("bucket", bucket), zap.String("key", key), zap.Error(err))
		return "", 0, err
	}
	return u, expires, nil
}

// Keys lists every key in the bucket.
func (s *Service) Keys(ctx context.Context, bucket string) ([]string, error) {
	keys, err := s.client.ListObjectKeys(ctx, bucket)
	if err != nil {
		s.logger.Error("Failed to list objects", zap.String("bucket", bucket), zap.Error(err))
		return nil, err
	}
	return keys, nil
}

// URLs lists every key in the bucket as "{endpoint}/{bucket}/{key}".
func (s *Service) URLs(ctx context.Context, bucket, endpoint string) ([]string, error) {
	urls, err := s.client.ListObjectURLs(ctx, bucket, endpoint)
	if err != nil {
		s.logger.Error("Failed to list object URLs", zap.String("bucket", bucket), zap.Error(err))
		return nil, err
	}
	return urls, nil
}

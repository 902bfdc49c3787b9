package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"go.uber.org/multierr"
)

// CopyObject copies srcBucket/srcKey to dstBucket/dstKey on the server side.
func (c *Client) CopyObject(ctx context.Context, srcBucket, dstBucket, srcKey, dstKey string) error {
	if srcBucket == "" || dstBucket == "" {
		return invalidArgument("source and destination buckets are required")
	}
	if srcKey == "" || dstKey == "" {
		return invalidArgument("source and destination keys are required")
	}
	_, err := c.resource.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: dstBucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: srcBucket, Object: srcKey},
	)
	if err != nil {
		return remoteError("copy object", dstBucket, dstKey, fmt.Errorf("from %s/%s: %w", srcBucket, srcKey, err))
	}
	return nil
}

// DeleteObjects removes keys from bucket in a single batch request.
func (c *Client) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	if bucket == "" {
		return invalidArgument("bucket name is required")
	}
	if len(keys) == 0 {
		return nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	var errs error
	for rerr := range c.resource.RemoveObjects(ctx, bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = multierr.Append(errs, remoteError("delete object", bucket, rerr.ObjectName, rerr.Err))
	}
	return errs
}

// UploadFile uploads a local file. An empty remoteKey uses the file's base name.
func (c *Client) UploadFile(ctx context.Context, bucket, localPath, remoteKey string) (UploadResult, error) {
	if bucket == "" {
		return UploadResult{}, invalidArgument("bucket name is required")
	}
	if localPath == "" {
		return UploadResult{}, invalidArgument("local path is required")
	}
	if remoteKey == "" {
		remoteKey = filepath.Base(localPath)
	}

	info, err := c.resource.FPutObject(ctx, bucket, remoteKey, localPath, minio.PutObjectOptions{})
	if err != nil {
		return UploadResult{}, remoteError("upload file", bucket, remoteKey, err)
	}
	return uploadResult(bucket, remoteKey, info), nil
}

// DownloadFile downloads remoteKey into localPath and returns the path written.
// An empty localPath uses the key itself, so keys containing slashes create subdirectories.
func (c *Client) DownloadFile(ctx context.Context, bucket, remoteKey, localPath string) (string, error) {
	if bucket == "" {
		return "", invalidArgument("bucket name is required")
	}
	if remoteKey == "" {
		return "", invalidArgument("object key is required")
	}
	if localPath == "" {
		localPath = remoteKey
	}

	if err := c.resource.FGetObject(ctx, bucket, remoteKey, localPath, minio.GetObjectOptions{}); err != nil {
		return "", remoteError("download file", bucket, remoteKey, err)
	}
	return localPath, nil
}

// CreateFolder puts a zero-byte "folder/" marker object and returns its key.
func (c *Client) CreateFolder(ctx context.Context, bucket, path string) (string, error) {
	if bucket == "" {
		return "", invalidArgument("bucket name is required")
	}
	folder := strings.Trim(path, "/")
	if folder == "" {
		return "", invalidArgument("folder path is required")
	}
	key := folder + "/"

	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader([]byte{}),
		ContentLength: aws.Int64(0),
	})
	if err != nil {
		return "", remoteError("create folder", bucket, key, err)
	}
	return key, nil
}

// PresignedURL returns a signed GET URL for the object valid for expires.
// A non-positive expiry falls back to the configured default.
func (c *Client) PresignedURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	if bucket == "" || key == "" {
		return "", invalidArgument("bucket and key are required")
	}
	expires = c.PresignExpiry(expires)
	u, err := c.resource.PresignedGetObject(ctx, bucket, key, expires, nil)
	if err != nil {
		return "", remoteError("presign object", bucket, key, err)
	}
	return u.String(), nil
}

// ListObjectKeys returns every key in the bucket in listing order.
func (c *Client) ListObjectKeys(ctx context.Context, bucket string) ([]string, error) {
	if bucket == "" {
		return nil, invalidArgument("bucket name is required")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := []string{}
	for obj := range c.resource.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, remoteError("list objects", bucket, "", obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// ListObjectURLs maps every key in the bucket to "{endpoint}/{bucket}/{key}".
// An empty endpoint uses the configured one.
func (c *Client) ListObjectURLs(ctx context.Context, bucket, endpoint string) ([]string, error) {
	if endpoint == "" {
		endpoint = c.endpoint
	}
	keys, err := c.ListObjectKeys(ctx, bucket)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		urls = append(urls, fmt.Sprintf("%s/%s/%s", endpoint, bucket, key))
	}
	return urls, nil
}

// PutObject uploads size bytes from r. Pass size = -1 if the length is unknown.
func (c *Client) PutObject(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (UploadResult, error) {
	if bucket == "" || key == "" {
		return UploadResult{}, invalidArgument("bucket and key are required")
	}
	info, err := c.resource.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return UploadResult{}, remoteError("put object", bucket, key, err)
	}
	return uploadResult(bucket, key, info), nil
}

// GetObject opens the object for reading. The caller must close it.
func (c *Client) GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	if bucket == "" || key == "" {
		return nil, invalidArgument("bucket and key are required")
	}
	obj, err := c.resource.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, remoteError("get object", bucket, key, err)
	}
	return obj, nil
}

func uploadResult(bucket, key string, info minio.UploadInfo) UploadResult {
	return UploadResult{
		Bucket:    bucket,
		Key:       key,
		ETag:      info.ETag,
		VersionID: info.VersionID,
		Size:      info.Size,
	}
}

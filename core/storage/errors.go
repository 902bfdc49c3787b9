package storage

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"
	"github.com/minio/minio-go/v7"
)

// ErrInvalidArgument is returned when a call is rejected before reaching the remote service.
var ErrInvalidArgument = errors.New("invalid argument")

// RemoteServiceError is returned for every failed call against the remote store.
type RemoteServiceError struct {
	// Op names the operation, e.g. "create bucket".
	Op string
	// Bucket is the bucket the call addressed.
	Bucket string
	// Key is the object key, empty for bucket level calls.
	Key string
	// Code is the S3 error code (NoSuchBucket, AccessDenied, ...), if the service returned one.
	Code string
	// StatusCode is the HTTP status of the failed response, 0 when no response was received.
	StatusCode int
	// Err is the underlying SDK error.
	Err error
}

func (e *RemoteServiceError) Error() string {
	target := e.Bucket
	if e.Key != "" {
		target += "/" + e.Key
	}
	if target != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, target, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

func remoteError(op, bucket, key string, err error) error {
	if err == nil {
		return nil
	}
	rerr := &RemoteServiceError{Op: op, Bucket: bucket, Key: key, Err: err}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		rerr.Code = apiErr.ErrorCode()
	}
	var statusErr interface{ HTTPStatusCode() int }
	if errors.As(err, &statusErr) {
		rerr.StatusCode = statusErr.HTTPStatusCode()
	}

	if resp := minio.ToErrorResponse(err); resp.Code != "" || resp.StatusCode != 0 {
		if rerr.Code == "" {
			rerr.Code = resp.Code
		}
		if rerr.StatusCode == 0 {
			rerr.StatusCode = resp.StatusCode
		}
	}
	return rerr
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ErrorCode returns the S3 error code carried by err, or "".
func ErrorCode(err error) string {
	var rerr *RemoteServiceError
	if errors.As(err, &rerr) {
		return rerr.Code
	}
	return ""
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var rerr *RemoteServiceError
	if errors.As(err, &rerr) {
		return rerr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a missing bucket, key or configuration.
func IsNotFound(err error) bool {
	switch ErrorCode(err) {
	case "NoSuchBucket", "NoSuchKey", "NotFound", "NoSuchPublicAccessBlockConfiguration":
		return true
	}
	return StatusCode(err) == http.StatusNotFound
}

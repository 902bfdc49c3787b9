package storage

import "time"

// BucketInfo describes a bucket returned by ListBuckets.
type BucketInfo struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

// UploadResult describes an uploaded object.
type UploadResult struct {
	Bucket    string `json:"bucket"`
	Key       string `json:"key"`
	ETag      string `json:"etag"`
	VersionID string `json:"version_id,omitempty"`
	Size      int64  `json:"size"`
}

// ObjectVersion is a single version or delete marker of an object.
type ObjectVersion struct {
	Key            string `json:"key"`
	VersionID      string `json:"version_id"`
	IsDeleteMarker bool   `json:"is_delete_marker"`
	IsLatest       bool   `json:"is_latest"`
}

// AccessBlock mirrors the four public access block flags of a bucket.
type AccessBlock struct {
	BlockPublicAcls       bool `json:"block_public_acls"`
	IgnorePublicAcls      bool `json:"ignore_public_acls"`
	BlockPublicPolicy     bool `json:"block_public_policy"`
	RestrictPublicBuckets bool `json:"restrict_public_buckets"`
}

// AllEnabled reports whether every flag is set.
func (a AccessBlock) AllEnabled() bool {
	return a.BlockPublicAcls && a.IgnorePublicAcls && a.BlockPublicPolicy && a.RestrictPublicBuckets
}

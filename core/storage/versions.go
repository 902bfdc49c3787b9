package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DeleteObjectAllVersions permanently deletes every version and delete marker of
// each key and returns what was removed.
//
// Listing is narrowed with Prefix=key, so only versions sharing that prefix are
// paged through; matches are then filtered on the exact key.
func (c *Client) DeleteObjectAllVersions(ctx context.Context, bucket string, keys []string) ([]ObjectVersion, error) {
	if bucket == "" {
		return nil, invalidArgument("bucket name is required")
	}

	var deleted []ObjectVersion
	for _, key := range keys {
		if key == "" {
			return deleted, invalidArgument("object key is required")
		}
		versions, err := c.ListObjectVersions(ctx, bucket, key)
		if err != nil {
			return deleted, err
		}
		for _, v := range versions {
			input := &s3.DeleteObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(v.Key),
			}
			// "null" identifies the copy written before versioning was enabled. It is
			// deleted too; skipping it would leave that copy behind.
			if v.VersionID != "" {
				input.VersionId = aws.String(v.VersionID)
			}
			if _, err := c.api.DeleteObject(ctx, input); err != nil {
				return deleted, remoteError("delete object version "+v.VersionID, bucket, v.Key, err)
			}
			deleted = append(deleted, v)
		}
	}
	return deleted, nil
}

// ListObjectVersions returns the versions and delete markers whose key equals key.
//
// Paging stops when a truncated page carries no markers or repeats markers
// already seen, so a misbehaving store cannot keep the listing alive forever.
func (c *Client) ListObjectVersions(ctx context.Context, bucket, key string) ([]ObjectVersion, error) {
	var versions []ObjectVersion
	p := s3.NewListObjectVersionsPaginator(c.api, &s3.ListObjectVersionsInput{
		Bucket: aws.String(bucket),
		Prefix: aws.String(key),
	})
	seen := make(map[string]bool)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, remoteError("list object versions", bucket, key, err)
		}
		for _, v := range out.Versions {
			if aws.ToString(v.Key) != key {
				continue
			}
			versions = append(versions, ObjectVersion{
				Key:       key,
				VersionID: aws.ToString(v.VersionId),
				IsLatest:  aws.ToBool(v.IsLatest),
			})
		}
		for _, m := range out.DeleteMarkers {
			if aws.ToString(m.Key) != key {
				continue
			}
			versions = append(versions, ObjectVersion{
				Key:            key,
				VersionID:      aws.ToString(m.VersionId),
				IsDeleteMarker: true,
				IsLatest:       aws.ToBool(m.IsLatest),
			})
		}

		if !aws.ToBool(out.IsTruncated) || (out.NextKeyMarker == nil && out.NextVersionIdMarker == nil) {
			break
		}
		marker := aws.ToString(out.NextKeyMarker) + "\x00" + aws.ToString(out.NextVersionIdMarker)
		if seen[marker] {
			break
		}
		seen[marker] = true
	}
	return versions, nil
}

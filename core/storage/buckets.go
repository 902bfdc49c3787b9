package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/minio/minio-go/v7"
)

// ListBuckets returns every bucket visible to the credentials.
func (c *Client) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	var buckets []BucketInfo
	p := s3.NewListBucketsPaginator(c.api, &s3.ListBucketsInput{}, func(o *s3.ListBucketsPaginatorOptions) {
		o.StopOnDuplicateToken = true
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, remoteError("list buckets", "", "", err)
		}
		for _, b := range out.Buckets {
			buckets = append(buckets, BucketInfo{
				Name:         aws.ToString(b.Name),
				CreationDate: aws.ToTime(b.CreationDate),
			})
		}
	}
	return buckets, nil
}

// CreateBucket creates a bucket. When secure is set, the public access block is
// applied afterwards as a separate call; a failure there leaves the bucket in place.
func (c *Client) CreateBucket(ctx context.Context, name string, secure bool) error {
	if name == "" {
		return invalidArgument("bucket name is required")
	}
	if err := c.resource.MakeBucket(ctx, name, minio.MakeBucketOptions{Region: c.region}); err != nil {
		return remoteError("create bucket", name, "", err)
	}
	if !secure {
		return nil
	}
	if err := c.SetPublicAccessBlock(ctx, name); err != nil {
		return fmt.Errorf("bucket %q created but not secured: %w", name, err)
	}
	return nil
}

// DeleteBucket deletes an empty bucket.
func (c *Client) DeleteBucket(ctx context.Context, name string) error {
	if name == "" {
		return invalidArgument("bucket name is required")
	}
	if err := c.resource.RemoveBucket(ctx, name); err != nil {
		return remoteError("delete bucket", name, "", err)
	}
	return nil
}

// SetPublicAccessBlock enables all four public access block flags on the bucket.
func (c *Client) SetPublicAccessBlock(ctx context.Context, bucket string) error {
	if bucket == "" {
		return invalidArgument("bucket name is required")
	}
	_, err := c.api.PutPublicAccessBlock(ctx, &s3.PutPublicAccessBlockInput{
		Bucket: aws.String(bucket),
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(true),
			IgnorePublicAcls:      aws.Bool(true),
			BlockPublicPolicy:     aws.Bool(true),
			RestrictPublicBuckets: aws.Bool(true),
		},
	})
	if err != nil {
		return remoteError("put public access block", bucket, "", err)
	}
	return nil
}

// PublicAccessBlock reads the public access block of the bucket.
func (c *Client) PublicAccessBlock(ctx context.Context, bucket string) (AccessBlock, error) {
	if bucket == "" {
		return AccessBlock{}, invalidArgument("bucket name is required")
	}
	out, err := c.api.GetPublicAccessBlock(ctx, &s3.GetPublicAccessBlockInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return AccessBlock{}, remoteError("get public access block", bucket, "", err)
	}
	conf := out.PublicAccessBlockConfiguration
	if conf == nil {
		return AccessBlock{}, nil
	}
	return AccessBlock{
		BlockPublicAcls:       aws.ToBool(conf.BlockPublicAcls),
		IgnorePublicAcls:      aws.ToBool(conf.IgnorePublicAcls),
		BlockPublicPolicy:     aws.ToBool(conf.BlockPublicPolicy),
		RestrictPublicBuckets: aws.ToBool(conf.RestrictPublicBuckets),
	}, nil
}

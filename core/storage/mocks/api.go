package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
)

// API is a mock implementation of storage.API
type API struct {
	mock.Mock
}

func (m *API) ListBuckets(ctx context.Context, params *s3.ListBucketsInput, _ ...func(*s3.Options)) (*s3.ListBucketsOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.ListBucketsOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.PutObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) ListObjectVersions(ctx context.Context, params *s3.ListObjectVersionsInput, _ ...func(*s3.Options)) (*s3.ListObjectVersionsOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.ListObjectVersionsOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.DeleteObjectOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) PutPublicAccessBlock(ctx context.Context, params *s3.PutPublicAccessBlockInput, _ ...func(*s3.Options)) (*s3.PutPublicAccessBlockOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.PutPublicAccessBlockOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *API) GetPublicAccessBlock(ctx context.Context, params *s3.GetPublicAccessBlockInput, _ ...func(*s3.Options)) (*s3.GetPublicAccessBlockOutput, error) {
	args := m.Called(ctx, params)
	if out, ok := args.Get(0).(*s3.GetPublicAccessBlockOutput); ok {
		return out, args.Error(1)
	}
	return nil, args.Error(1)
}

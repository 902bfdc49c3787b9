package storage_test

import (
	"context"
	"testing"

	"bucket-manager/core/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func version(key, id string) types.ObjectVersion {
	return types.ObjectVersion{Key: aws.String(key), VersionId: aws.String(id)}
}

func marker(key, id string) types.DeleteMarkerEntry {
	return types.DeleteMarkerEntry{Key: aws.String(key), VersionId: aws.String(id), IsLatest: aws.Bool(true)}
}

func deleteOf(key, id string) interface{} {
	return mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == key && aws.ToString(in.VersionId) == id
	})
}

func TestDeleteObjectAllVersions(t *testing.T) {
	t.Run("ExactKeyAcrossPages", func(t *testing.T) {
		client, api, _ := newTestClient()

		api.On("ListObjectVersions", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectVersionsInput) bool {
			return aws.ToString(in.Prefix) == "k" && in.KeyMarker == nil
		})).Return(&s3.ListObjectVersionsOutput{
			Versions:            []types.ObjectVersion{version("k", "v1"), version("k2", "x1")},
			IsTruncated:         aws.Bool(true),
			NextKeyMarker:       aws.String("k2"),
			NextVersionIdMarker: aws.String("x1"),
		}, nil).Once()
		api.On("ListObjectVersions", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectVersionsInput) bool {
			return aws.ToString(in.KeyMarker) == "k2" && aws.ToString(in.VersionIdMarker) == "x1"
		})).Return(&s3.ListObjectVersionsOutput{
			Versions:      []types.ObjectVersion{version("k", "v2")},
			DeleteMarkers: []types.DeleteMarkerEntry{marker("k", "m1"), marker("k2", "m2")},
			IsTruncated:   aws.Bool(false),
		}, nil).Once()

		api.On("DeleteObject", mock.Anything, deleteOf("k", "v1")).Return(&s3.DeleteObjectOutput{}, nil)
		api.On("DeleteObject", mock.Anything, deleteOf("k", "v2")).Return(&s3.DeleteObjectOutput{}, nil)
		api.On("DeleteObject", mock.Anything, deleteOf("k", "m1")).Return(&s3.DeleteObjectOutput{}, nil)

		deleted, err := client.DeleteObjectAllVersions(context.Background(), "assets", []string{"k"})
		require.NoError(t, err)
		assert.Equal(t, []storage.ObjectVersion{
			{Key: "k", VersionID: "v1"},
			{Key: "k", VersionID: "v2"},
			{Key: "k", VersionID: "m1", IsDeleteMarker: true, IsLatest: true},
		}, deleted)

		api.AssertNumberOfCalls(t, "DeleteObject", 3)
		api.AssertNotCalled(t, "DeleteObject", mock.Anything, deleteOf("k2", "x1"))
		api.AssertNotCalled(t, "DeleteObject", mock.Anything, deleteOf("k2", "m2"))
	})

	t.Run("EveryRequestedKey", func(t *testing.T) {
		client, api, _ := newTestClient()
		for _, key := range []string{"a", "b"} {
			key := key
			api.On("ListObjectVersions", mock.Anything, mock.MatchedBy(func(in *s3.ListObjectVersionsInput) bool {
				return aws.ToString(in.Prefix) == key
			})).Return(&s3.ListObjectVersionsOutput{
				Versions: []types.ObjectVersion{version(key, "null")},
			}, nil)
			api.On("DeleteObject", mock.Anything, deleteOf(key, "null")).Return(&s3.DeleteObjectOutput{}, nil)
		}

		deleted, err := client.DeleteObjectAllVersions(context.Background(), "assets", []string{"a", "b"})
		require.NoError(t, err)
		assert.Len(t, deleted, 2)
		api.AssertExpectations(t)
	})

	t.Run("DeleteFails", func(t *testing.T) {
		client, api, _ := newTestClient()
		api.On("ListObjectVersions", mock.Anything, mock.Anything).Return(&s3.ListObjectVersionsOutput{
			Versions: []types.ObjectVersion{version("k", "v1"), version("k", "v2")},
		}, nil)
		api.On("DeleteObject", mock.Anything, deleteOf("k", "v1")).Return(&s3.DeleteObjectOutput{}, nil)
		api.On("DeleteObject", mock.Anything, deleteOf("k", "v2")).Return(nil, assert.AnError)

		deleted, err := client.DeleteObjectAllVersions(context.Background(), "assets", []string{"k"})
		assert.Error(t, err)
		assert.Len(t, deleted, 1)
	})

	t.Run("ListFails", func(t *testing.T) {
		client, api, _ := newTestClient()
		api.On("ListObjectVersions", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		deleted, err := client.DeleteObjectAllVersions(context.Background(), "assets", []string{"k"})
		assert.Error(t, err)
		assert.Empty(t, deleted)
		api.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)
	})

	t.Run("TruncatedWithoutMarkers", func(t *testing.T) {
		client, api, _ := newTestClient()
		api.On("ListObjectVersions", mock.Anything, mock.Anything).Return(&s3.ListObjectVersionsOutput{
			Versions:    []types.ObjectVersion{version("k", "v1")},
			IsTruncated: aws.Bool(true),
		}, nil)
		api.On("DeleteObject", mock.Anything, deleteOf("k", "v1")).Return(&s3.DeleteObjectOutput{}, nil)

		deleted, err := client.DeleteObjectAllVersions(context.Background(), "assets", []string{"k"})
		require.NoError(t, err)
		assert.Len(t, deleted, 1)
		api.AssertNumberOfCalls(t, "ListObjectVersions", 1)
	})

	t.Run("RepeatedMarkers", func(t *testing.T) {
		client, api, _ := newTestClient()
		api.On("ListObjectVersions", mock.Anything, mock.Anything).Return(&s3.ListObjectVersionsOutput{
			Versions:            []types.ObjectVersion{version("k", "v1")},
			IsTruncated:         aws.Bool(true),
			NextKeyMarker:       aws.String("k"),
			NextVersionIdMarker: aws.String("v1"),
		}, nil)

		versions, err := client.ListObjectVersions(context.Background(), "assets", "k")
		require.NoError(t, err)
		assert.Len(t, versions, 2)
		api.AssertNumberOfCalls(t, "ListObjectVersions", 2)
	})
}

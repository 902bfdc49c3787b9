package buckets

import (
	"context"
	"testing"

	"bucket-manager/core/storage"
	"bucket-manager/core/storage/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupService() (*Service, *mocks.API, *mocks.Resource, *observer.ObservedLogs) {
	api := new(mocks.API)
	res := new(mocks.Resource)
	core, logs := observer.New(zapcore.DebugLevel)
	client := storage.New(api, res, storage.Config{Endpoint: "http://localhost:9000", Region: "us-east-1"})
	return NewService(client, zap.New(core)), api, res, logs
}

func TestService_List(t *testing.T) {
	svc, api, _, _ := setupService()
	api.On("ListBuckets", mock.Anything, mock.Anything).Return(&s3.ListBucketsOutput{
		Buckets: []types.Bucket{{Name: aws.String("a")}, {Name: aws.String("b")}},
	}, nil)

	buckets, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, buckets, 2)
}

func TestService_Create(t *testing.T) {
	t.Run("Secure", func(t *testing.T) {
		svc, api, res, logs := setupService()
		res.On("MakeBucket", mock.Anything, "assets", mock.Anything).Return(nil)
		api.On("PutPublicAccessBlock", mock.Anything, mock.Anything).Return(&s3.PutPublicAccessBlockOutput{}, nil)

		err := svc.Create(context.Background(), "assets", true)
		assert.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("Created bucket").Len())
	})

	t.Run("FailureIsLogged", func(t *testing.T) {
		svc, _, res, logs := setupService()
		res.On("MakeBucket", mock.Anything, "assets", mock.Anything).Return(minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403})

		err := svc.Create(context.Background(), "assets", false)
		assert.Error(t, err)

		entries := logs.FilterMessage("Failed to create bucket").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "assets", entries[0].ContextMap()["bucket"])
	})
}

func TestService_Delete(t *testing.T) {
	svc, _, res, logs := setupService()
	res.On("RemoveBucket", mock.Anything, "assets").Return(assert.AnError)

	assert.Error(t, svc.Delete(context.Background(), "assets"))
	assert.Equal(t, 1, logs.FilterMessage("Failed to delete bucket").Len())
}

func TestService_AccessBlock(t *testing.T) {
	svc, api, _, _ := setupService()
	api.On("PutPublicAccessBlock", mock.Anything, mock.Anything).Return(&s3.PutPublicAccessBlockOutput{}, nil)
	api.On("GetPublicAccessBlock", mock.Anything, mock.Anything).Return(&s3.GetPublicAccessBlockOutput{
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(true),
			IgnorePublicAcls:      aws.Bool(true),
			BlockPublicPolicy:     aws.Bool(true),
			RestrictPublicBuckets: aws.Bool(true),
		},
	}, nil)

	require.NoError(t, svc.BlockPublicAccess(context.Background(), "assets"))
	block, err := svc.AccessBlock(context.Background(), "assets")
	require.NoError(t, err)
	assert.True(t, block.AllEnabled())
}

package buckets

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"bucket-manager/core/storage"
	"bucket-manager/core/storage/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() (*fiber.App, *mocks.API, *mocks.Resource) {
	app := fiber.New()
	api := new(mocks.API)
	res := new(mocks.Resource)
	client := storage.New(api, res, storage.Config{Endpoint: "http://localhost:9000", Region: "us-east-1"})
	handler := NewHandler(NewService(client, zap.NewNop()))
	handler.RegisterRoutes(app)
	return app, api, res
}

func TestHandleList(t *testing.T) {
	app, api, _ := setupTestApp()
	api.On("ListBuckets", mock.Anything, mock.Anything).Return(&s3.ListBucketsOutput{
		Buckets: []types.Bucket{{Name: aws.String("assets")}},
	}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/buckets", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "assets", body[0]["name"])
}

func TestHandleCreate(t *testing.T) {
	t.Run("Secure", func(t *testing.T) {
		app, api, res := setupTestApp()
		res.On("MakeBucket", mock.Anything, "assets", mock.Anything).Return(nil)
		api.On("PutPublicAccessBlock", mock.Anything, mock.Anything).Return(&s3.PutPublicAccessBlockOutput{}, nil)

		resp, err := app.Test(httptest.NewRequest("POST", "/buckets/assets?secure=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, true, body["secure"])
		api.AssertNumberOfCalls(t, "PutPublicAccessBlock", 1)
	})

	t.Run("Conflict", func(t *testing.T) {
		app, _, res := setupTestApp()
		res.On("MakeBucket", mock.Anything, "assets", mock.Anything).
			Return(minio.ErrorResponse{Code: "BucketAlreadyExists", StatusCode: 409})

		resp, err := app.Test(httptest.NewRequest("POST", "/buckets/assets", nil))
		require.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
	})
}

func TestHandleDelete(t *testing.T) {
	app, _, res := setupTestApp()
	res.On("RemoveBucket", mock.Anything, "assets").Return(nil)
	res.On("RemoveBucket", mock.Anything, "down").Return(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/buckets/assets", nil))
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/buckets/down", nil))
	require.NoError(t, err)
	assert.Equal(t, 502, resp.StatusCode)
}

func TestHandlePublicAccessBlock(t *testing.T) {
	app, api, _ := setupTestApp()
	api.On("PutPublicAccessBlock", mock.Anything, mock.Anything).Return(&s3.PutPublicAccessBlockOutput{}, nil)
	api.On("GetPublicAccessBlock", mock.Anything, mock.Anything).Return(&s3.GetPublicAccessBlockOutput{
		PublicAccessBlockConfiguration: &types.PublicAccessBlockConfiguration{
			BlockPublicAcls:       aws.Bool(true),
			IgnorePublicAcls:      aws.Bool(true),
			BlockPublicPolicy:     aws.Bool(true),
			RestrictPublicBuckets: aws.Bool(true),
		},
	}, nil)

	resp, err := app.Test(httptest.NewRequest("PUT", "/buckets/assets/public-access-block", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/buckets/assets/public-access-block", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var block storage.AccessBlock
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&block))
	assert.True(t, block.AllEnabled())
}

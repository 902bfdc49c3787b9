package server_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"bucket-manager/core/server"
	"bucket-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"InvalidArgument", fmt.Errorf("%w: bucket name is required", storage.ErrInvalidArgument), 400},
		{"RemoteForbidden", &storage.RemoteServiceError{Op: "list", Code: "AccessDenied", StatusCode: 403, Err: errors.New("x")}, 403},
		{"RemoteNotFoundCode", &storage.RemoteServiceError{Op: "get", Code: "NoSuchKey", Err: errors.New("x")}, 404},
		{"RemoteServerError", &storage.RemoteServiceError{Op: "put", StatusCode: 500, Err: errors.New("x")}, 502},
		{"Network", &storage.RemoteServiceError{Op: "put", Err: errors.New("connection refused")}, 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, server.StatusFor(tt.err))
		})
	}
}

func TestError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return server.Error(c, &storage.RemoteServiceError{Op: "delete bucket", Bucket: "b", Code: "BucketNotEmpty", StatusCode: 409, Err: errors.New("not empty")})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 409, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "BucketNotEmpty", body["code"])
	assert.Equal(t, `delete bucket "b": not empty`, body["error"])
}

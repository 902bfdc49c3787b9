package objects

import (
	"testing"

	"bucket-manager/core/storage"
	"bucket-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	client := storage.New(new(mocks.API), new(mocks.Resource), storage.Config{})
	feature := NewFeature(client, zap.NewNop())

	assert.Equal(t, "objects", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}

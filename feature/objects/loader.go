package objects

import (
	"bucket-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature registers the object endpoints.
type Feature struct {
	service *Service
}

// NewFeature creates the objects feature.
func NewFeature(client *storage.Client, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(client, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "objects"
}

// IsEnabled reports whether the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the object routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

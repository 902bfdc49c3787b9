package buckets

import (
	"bucket-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature registers the bucket endpoints.
type Feature struct {
	service *Service
}

// NewFeature creates the buckets feature.
func NewFeature(client *storage.Client, logger *zap.Logger) *Feature {
	return &Feature{service: NewService(client, logger)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "buckets"
}

// IsEnabled reports whether the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the bucket routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

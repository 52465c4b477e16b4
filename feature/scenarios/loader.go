package scenarios

import (
	"update-reconciler/core/reconcile"
	"update-reconciler/core/scenario"
	"update-reconciler/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new scenarios feature reading from bucket.
func NewFeature(client storage.Client, bucket string, driver *reconcile.Driver, logger *zap.Logger) *Feature {
	svc := NewService(scenario.NewObjectLoader(client, bucket), driver, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "scenarios"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.loader.Bucket() != ""
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

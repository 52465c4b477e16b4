package journal

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	repo    *Repository
	handler *Handler
}

// NewFeature creates a new journal feature. A nil db disables it.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{}
	if db != nil {
		f.repo = NewRepository(db)
		f.handler = NewHandler(f.repo, logger)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "journal"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.repo != nil
}

// Repository returns the journal repository, nil when disabled.
func (f *Feature) Repository() *Repository {
	return f.repo
}

// Load migrates the journal table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

package scenarios

import (
	"context"

	"update-reconciler/core/reconcile"
	"update-reconciler/core/scenario"

	"go.uber.org/zap"
)

// Service runs stored scenarios.
type Service struct {
	loader *scenario.ObjectLoader
	driver *reconcile.Driver
	logger *zap.Logger
}

// NewService creates a new scenario service.
func NewService(loader *scenario.ObjectLoader, driver *reconcile.Driver, logger *zap.Logger) *Service {
	return &Service{loader: loader, driver: driver, logger: logger}
}

// List returns the stored scenario names under prefix.
func (s *Service) List(ctx context.Context, prefix string) ([]string, error) {
	return s.loader.List(ctx, prefix)
}

// Run loads and runs the scenario stored under name.
func (s *Service) Run(ctx context.Context, name string, fallback bool) (scenario.Result, error) {
	sc, err := s.loader.Load(ctx, name)
	if err != nil {
		return scenario.Result{}, err
	}
	if sc.Name == "" {
		sc.Name = name
	}
	return scenario.Run(ctx, s.driver, sc, fallback)
}

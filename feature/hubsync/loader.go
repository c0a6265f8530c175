package hubsync

import (
	"hub-sync/core/slack"
	"hub-sync/core/tables"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature represents the hub sync feature module.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new hub sync feature.
func NewFeature(lister tables.Lister, updater slack.GroupUpdater, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(lister, updater, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "hubs"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

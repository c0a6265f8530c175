package hubsync

import (
	"hub-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Handler handles HTTP requests for hub syncs.
type Handler struct {
	service *Service
	// runs collapses concurrent triggers so only one run is in flight.
	runs singleflight.Group
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the hub routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/hubs")
	group.Get("/preview", h.HandlePreview)
	group.Post("/sync", h.HandleSync)
}

// HandlePreview resolves every hub without updating any group.
// @Summary Preview Hub Sync
// @Description Resolves every hub's coordinators to Slack user ids without updating any user group.
// @Tags hubs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} hubsync.Report "Dry-run Report"
// @Failure 500 {object} map[string]string "Table Load Failure"
// @Router /hubs/preview [get]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	return h.run(c, RunOptions{DryRun: true})
}

// HandleSync runs a full sync. Concurrent requests share the same run.
// @Summary Run Hub Sync
// @Description Replaces the membership of every hub's Slack user group with its resolved coordinators. Concurrent requests share a single run.
// @Tags hubs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} hubsync.Report "Sync Report"
// @Failure 500 {object} map[string]string "Table Load Failure"
// @Router /hubs/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	return h.run(c, RunOptions{})
}

func (h *Handler) run(c *fiber.Ctx, opts RunOptions) error {
	l := logger.WithRequestID(h.service.logger, c)
	l.Info("Hub sync triggered", zap.Bool("dry_run", opts.DryRun))

	key := "sync"
	if opts.DryRun {
		key = "preview"
	}

	v, err, shared := h.runs.Do(key, func() (any, error) {
		return h.service.Run(c.UserContext(), opts)
	})
	if err != nil {
		l.Error("Hub sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "error",
			"error":  err.Error(),
		})
	}
	if shared {
		l.Debug("Joined in-flight hub sync")
	}

	return c.JSON(v.(*Report))
}

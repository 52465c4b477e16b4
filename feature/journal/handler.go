package journal

import (
	"update-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the journal.
type Handler struct {
	repo   *Repository
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/journal", h.HandleRecent)
}

// HandleRecent lists the latest entries. Query: limit.
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultLimit)

	entries, err := h.repo.Recent(c.UserContext(), limit)
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to read journal", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"entries": entries, "count": len(entries)})
}

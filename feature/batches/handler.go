package batches

import (
	"errors"

	"update-reconciler/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for batch operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the batch routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/batches")
	group.Post("/validate", h.HandleValidate)
	group.Post("/merge", h.HandleMerge)
	group.Post("/shift", h.HandleShift)
	group.Post("/apply", h.HandleApply)
}

// HandleValidate checks a batch against a shape.
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	var req ShapeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	resp, err := h.service.Validate(req)
	if err != nil {
		return h.fail(c, err)
	}
	if resp.Status == StatusInconsistent {
		return c.Status(fiber.StatusConflict).JSON(resp)
	}
	return c.JSON(resp)
}

// HandleMerge merges two batches.
func (h *Handler) HandleMerge(c *fiber.Ctx) error {
	var req MergeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	merged, err := h.service.Merge(req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(merged)
}

// HandleShift renumbers the sections of a batch.
func (h *Handler) HandleShift(c *fiber.Ctx) error {
	var req ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	shifted, err := h.service.Shift(req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(shifted)
}

// HandleApply applies a batch to an in-memory view.
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	var req ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	l := logger.WithRayID(h.service.logger, c)

	resp, err := h.service.Apply(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}

	l.Info("Batch applied",
		zap.String("outcome", string(resp.Outcome)),
		zap.Bool("fallback", req.Fallback),
	)

	if resp.InconsistencyReport != nil {
		return c.Status(fiber.StatusConflict).JSON(resp)
	}
	return c.JSON(resp)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrInvalidShape) {
		return badRequest(c, err)
	}
	logger.WithRayID(h.service.logger, c).Error("Batch operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

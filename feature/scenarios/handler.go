package scenarios

import (
	"errors"

	"update-reconciler/core/logger"
	"update-reconciler/core/scenario"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RunRequest is the body of POST /scenarios/run.
type RunRequest struct {
	Name     string `json:"name"`
	Fallback bool   `json:"fallback"`
}

// Handler handles HTTP requests for stored scenarios.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the scenario routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/scenarios")
	group.Get("/", h.HandleList)
	group.Post("/run", h.HandleRun)
}

// HandleList lists stored scenarios. Query: prefix.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	names, err := h.service.List(c.UserContext(), c.Query("prefix"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list scenarios", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"scenarios": names, "count": len(names)})
}

// HandleRun runs one stored scenario.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	var req RunRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	l := logger.WithRayID(h.service.logger, c).With(zap.String("scenario", req.Name))

	res, err := h.service.Run(c.UserContext(), req.Name, req.Fallback)
	if err != nil {
		l.Error("Failed to run scenario", zap.Error(err))
		status := fiber.StatusBadGateway
		if errors.Is(err, scenario.ErrInvalidScenario) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Scenario run", zap.String("outcome", string(res.Outcome)))
	return c.JSON(res)
}

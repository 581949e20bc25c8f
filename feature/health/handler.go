package health

import (
	"context"
	"time"

	"object-gateway/core/logger"
	"object-gateway/core/objectstore"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Checker is the probe the handler runs.
type Checker interface {
	Health(ctx context.Context) error
}

// Handler serves the storage health probe.
type Handler struct {
	checker Checker
	logger  *zap.Logger
	timeout time.Duration
}

// NewHandler creates a new health handler. A non-positive timeout means 10s.
func NewHandler(checker Checker, logger *zap.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Handler{checker: checker, logger: logger, timeout: timeout}
}

// RegisterRoutes registers the health route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
}

// HandleHealth writes the marker object and reports the outcome.
// @Summary Storage Health
// @Description Writes a small marker object into the default bucket, creating the bucket if needed.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Healthy"
// @Failure 503 {object} map[string]string "Unhealthy"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	if err := h.checker.Health(ctx); err != nil {
		logger.WithRayID(h.logger, c).Warn("Storage unhealthy", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"key":    objectstore.HealthKey,
	})
}

package journal

import (
	"context"

	"object-gateway/core/journal"
	"object-gateway/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Reader returns the most recent journal entries.
type Reader interface {
	Recent(ctx context.Context, limit int) ([]journal.Entry, error)
}

// Handler serves the operation journal.
type Handler struct {
	reader Reader
	logger *zap.Logger
}

// NewHandler creates a new journal handler.
func NewHandler(reader Reader, logger *zap.Logger) *Handler {
	return &Handler{reader: reader, logger: logger}
}

// RegisterRoutes registers the journal route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/journal", h.HandleRecent)
}

// HandleRecent lists the latest mutating operations, newest first.
// @Summary Operation Journal
// @Description Lists recorded put, remove and health operations, newest first.
// @Tags journal
// @Produce json
// @Param limit query int false "Maximum entries (default 100, max 1000)"
// @Success 200 {array} journal.Entry "Entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /journal [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	entries, err := h.reader.Recent(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to read journal", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	return c.JSON(entries)
}

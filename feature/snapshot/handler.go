package snapshot

import (
	"emoji-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshot export.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/snapshot", h.HandleExport)
	app.Get("/snapshots", h.HandleList)
}

// HandleExport writes the cached catalog to object storage.
// @Summary Export Snapshot
// @Description Writes the cached emojis, packs and categories as one JSON object to the snapshot bucket. Does not fetch from emoji.gg.
// @Tags snapshot
// @Produce json
// @Success 201 {object} Result "Written snapshot"
// @Failure 500 {object} map[string]string "Storage Error"
// @Router /snapshot [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Exporting snapshot")

	res, err := h.service.Export(c.Context())
	if err != nil {
		l.Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleList lists stored snapshots.
// @Summary List Snapshots
// @Description Lists the snapshot objects in the bucket, oldest first.
// @Tags snapshot
// @Produce json
// @Success 200 {array} Object "Snapshots"
// @Failure 500 {object} map[string]string "Storage Error"
// @Router /snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	objects, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"snapshots": objects})
}

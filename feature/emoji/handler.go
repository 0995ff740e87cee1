package emoji

import (
	"errors"

	"emoji-catalog/core/catalog"
	"emoji-catalog/core/errdefs"
	"emoji-catalog/core/logger"
	"emoji-catalog/core/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog mirror.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = catalog.Summary{}
	var _ = model.PageStats{}
	return &Handler{service: service}
}

// RegisterRoutes registers the mirror routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/emojis", h.HandleListEmojis)
	app.Get("/emojis/:id", h.HandleGetEmoji)
	app.Get("/packs", h.HandleListPacks)
	app.Get("/packs/:id", h.HandleGetPack)
	app.Get("/categories", h.HandleListCategories)
	app.Get("/categories/:index", h.HandleGetCategory)
	app.Get("/stats", h.HandleStats)
	app.Post("/refresh", h.HandleRefresh)
}

// HandleListEmojis lists cached emojis.
// @Summary List Emojis
// @Description Lists the cached emojis ordered by id. With refresh=true the collection is fetched first and returned in remote order.
// @Tags emojis
// @Produce json
// @Param refresh query boolean false "Fetch from emoji.gg first"
// @Success 200 {array} map[string]interface{} "Emojis"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /emojis [get]
func (h *Handler) HandleListEmojis(c *fiber.Ctx) error {
	emojis, err := h.service.Emojis(c.Context(), c.QueryBool("refresh"))
	if err != nil {
		return h.fail(c, "List emojis failed", err)
	}
	return c.JSON(emojis)
}

// HandleGetEmoji returns one emoji.
// @Summary Get Emoji
// @Description Returns the emoji with the given id. On a cache miss the emoji collection is fetched once.
// @Tags emojis
// @Produce json
// @Param id path int true "Emoji ID"
// @Success 200 {object} map[string]interface{} "Emoji"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /emojis/{id} [get]
func (h *Handler) HandleGetEmoji(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid emoji id"})
	}

	e, err := h.service.Emoji(c.Context(), id)
	if err != nil {
		return h.fail(c, "Get emoji failed", err)
	}

	body := fiber.Map{"emoji": e}
	if cat, ok := e.Category().Resolve(); ok {
		body["category"] = cat
	}
	return c.JSON(body)
}

// HandleListPacks lists cached packs.
// @Summary List Packs
// @Description Lists the cached emoji packs ordered by id. With refresh=true the collection is fetched first.
// @Tags packs
// @Produce json
// @Param refresh query boolean false "Fetch from emoji.gg first"
// @Success 200 {array} map[string]interface{} "Packs"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /packs [get]
func (h *Handler) HandleListPacks(c *fiber.Ctx) error {
	packs, err := h.service.Packs(c.Context(), c.QueryBool("refresh"))
	if err != nil {
		return h.fail(c, "List packs failed", err)
	}
	return c.JSON(packs)
}

// HandleGetPack returns one pack.
// @Summary Get Pack
// @Description Returns the pack with the given id. On a cache miss the pack collection is fetched once.
// @Tags packs
// @Produce json
// @Param id path int true "Pack ID"
// @Success 200 {object} map[string]interface{} "Pack"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /packs/{id} [get]
func (h *Handler) HandleGetPack(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pack id"})
	}

	p, err := h.service.Pack(c.Context(), id)
	if err != nil {
		return h.fail(c, "Get pack failed", err)
	}
	return c.JSON(p)
}

// HandleListCategories lists categories in position order.
// @Summary List Categories
// @Description Lists the cached categories in position order. With refresh=true the listing is fetched first.
// @Tags categories
// @Produce json
// @Param refresh query boolean false "Fetch from emoji.gg first"
// @Success 200 {array} map[string]interface{} "Categories"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /categories [get]
func (h *Handler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.Context(), c.QueryBool("refresh"))
	if err != nil {
		return h.fail(c, "List categories failed", err)
	}
	return c.JSON(categories)
}

// HandleGetCategory returns the category at a position.
// @Summary Get Category
// @Description Returns the category currently at the given index. Never fetches.
// @Tags categories
// @Produce json
// @Param index path int true "Category index"
// @Success 200 {object} map[string]interface{} "Category"
// @Failure 400 {object} map[string]string "Invalid index"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /categories/{index} [get]
func (h *Handler) HandleGetCategory(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category index"})
	}

	cat, ok := h.service.Category(index)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no category at this index"})
	}
	return c.JSON(cat)
}

// HandleStats returns site statistics.
// @Summary Site Statistics
// @Description Fetches the current emoji.gg statistics. Statistics are never cached.
// @Tags stats
// @Produce json
// @Success 200 {object} model.PageStats "Statistics"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return h.fail(c, "Stats request failed", err)
	}
	return c.JSON(stats)
}

// HandleRefresh refreshes every cached collection.
// @Summary Refresh Caches
// @Description Fetches emojis, packs and categories concurrently and reconciles them into the caches.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Summary "Refreshed counts"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Refreshing all collections")

	summary, err := h.service.RefreshAll(c.Context())
	if err != nil {
		return h.fail(c, "Refresh failed", err)
	}
	return c.JSON(summary)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := StatusFor(err)
	l := logger.WithRayID(h.service.logger, c)
	if status >= fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Info(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps a catalog error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, errdefs.ErrTransport), errors.Is(err, errdefs.ErrDecoding):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

package catalog

import (
	"catalog-web/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// ErrorResult is the JSON body of a failed load.
type ErrorResult struct {
	Status int            `json:"status"`
	Error  *UpstreamError `json:"error"`
}

// Handler handles HTTP requests for catalog item pages.
type Handler struct {
	loader Fetcher[Item]
	pages  *Pages
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(loader Fetcher[Item], pages *Pages, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{loader: loader, pages: pages, logger: logger}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/:"+ParamItem, h.HandleGetItem)
}

// HandleGetItem loads a catalog item from the backend and renders its page.
// @Summary Get Catalog Item
// @Description Fetches the item from the backend API and renders it. Responds with JSON when the client prefers application/json.
// @Tags catalog
// @Produce html
// @Produce json
// @Param item path string true "Catalog item identifier"
// @Success 200 {object} catalog.Envelope[catalog.Item] "Item"
// @Failure 404 {object} catalog.ErrorResult "Backend returned 404"
// @Failure 500 {object} catalog.ErrorResult "Backend error or unexpected failure"
// @Router /catalog/{item} [get]
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	params := RouteParams{ParamItem: utils.CopyString(c.Params(ParamItem))}
	l := logger.WithRayID(h.logger, c).With(zap.String("item", params.Item()))

	res, err := h.loader.Load(c.UserContext(), params)
	if err != nil {
		l.Error("Catalog item load failed", zap.Error(err))
		return err
	}

	if res.Failed() {
		l.Warn("Catalog backend rejected item", zap.Int("status", res.Err.Status))
		return h.renderError(c, res.Err)
	}

	if wantsJSON(c) {
		return c.JSON(Envelope[Item]{Data: res.Item})
	}

	page, err := h.pages.RenderItem(params.Item(), res.Item)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}

func (h *Handler) renderError(c *fiber.Ctx, e *UpstreamError) error {
	c.Status(e.Status)
	if wantsJSON(c) {
		return c.JSON(ErrorResult{Status: e.Status, Error: e})
	}

	page, err := h.pages.RenderError(e)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

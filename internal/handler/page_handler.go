package handler

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/logger"
	"ndmedia/internal/render"
	"ndmedia/internal/service"
)

// ViewIDHeader carries the id of the view a page response started.
const ViewIDHeader = "X-View-ID"

// PageRenderer is the part of render.Renderer the page handler needs.
type PageRenderer interface {
	NewPageData(view *dto.ViewResponse, year int) render.PageData
	Render(w io.Writer, d render.PageData) error
}

// PageHandler serves the HTML pages and their static assets.
type PageHandler struct {
	views    service.ViewService
	renderer PageRenderer
	now      func() time.Time
}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler(views service.ViewService, renderer PageRenderer) *PageHandler {
	return &PageHandler{
		views:    views,
		renderer: renderer,
		now:      time.Now,
	}
}

// Page enters the page named by the request path and renders it. Only "/"
// and the page slugs are routed here; the view ends through the exit beacon
// or its TTL, never as a side effect of another GET.
func (h *PageHandler) Page(c *fiber.Ctx) error {
	page := domain.ParsePage(strings.Trim(c.Path(), "/"))

	view, err := h.views.Enter(c.UserContext(), page)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, h.renderer.NewPageData(view, h.now().Year())); err != nil {
		logger.Get().Error("Failed to render page",
			zap.String("page", page.String()),
			zap.String("view_id", view.ID),
			zap.Error(err))
		return domain.NewInternalError("failed to render page", err)
	}

	c.Set(ViewIDHeader, view.ID)
	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// Unknown answers GETs that match no page. Bare names redirect to Home;
// anything that looks like a file (favicon.ico, robots.txt) is a 404. No
// view is created or touched either way.
func (h *PageHandler) Unknown(c *fiber.Ctx) error {
	name := c.Params("page")
	if strings.Contains(name, ".") {
		return domain.NewNotFoundError("page not found").WithContext("path", c.Path())
	}
	return c.Redirect(domain.DefaultPage.Path(), fiber.StatusFound)
}

// Static serves the stylesheet and script from memory. ETag and
// If-None-Match handling come from the etag middleware mounted on the route.
func (h *PageHandler) Static(c *fiber.Ctx) error {
	asset, ok := render.Assets[c.Params("file")]
	if !ok {
		return domain.NewNotFoundError("asset not found")
	}

	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	c.Set(fiber.HeaderContentType, asset.ContentType)
	return c.Send(asset.Body)
}

package handler

import (
	"github.com/gofiber/fiber/v2"

	"ndmedia/internal/middleware"
	"ndmedia/internal/service"
)

// ViewHandler exposes view state and the page chrome toggles.
type ViewHandler struct {
	service service.ViewService
}

// NewViewHandler creates a new ViewHandler instance
func NewViewHandler(service service.ViewService) *ViewHandler {
	return &ViewHandler{
		service: service,
	}
}

// GetView godoc
// @Summary Get view state
// @Tags views
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} dto.ViewResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /views/{viewID} [get]
func (h *ViewHandler) GetView(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// ExitView godoc
// @Summary Exit a view
// @Description Discards the view's quiz, slideshow and tracker state. Exiting twice is allowed.
// @Tags views
// @Param viewID path string true "View ID"
// @Success 204
// @Router /views/{viewID} [delete]
// @Router /views/{viewID}/exit [post]
func (h *ViewHandler) ExitView(c *fiber.Ctx) error {
	if err := h.service.Exit(c.UserContext(), middleware.ViewID(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleSidebar godoc
// @Summary Collapse or expand the section sidebar
// @Tags views
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} domain.ShellState
// @Router /views/{viewID}/shell/sidebar [post]
func (h *ViewHandler) ToggleSidebar(c *fiber.Ctx) error {
	shell, err := h.service.ToggleSidebar(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(shell)
}

// ToggleMenu godoc
// @Summary Open or close the mobile menu
// @Tags views
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} domain.ShellState
// @Router /views/{viewID}/shell/menu [post]
func (h *ViewHandler) ToggleMenu(c *fiber.Ctx) error {
	shell, err := h.service.ToggleMenu(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(shell)
}

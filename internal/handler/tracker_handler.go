package handler

import (
	"github.com/gofiber/fiber/v2"

	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/middleware"
	"ndmedia/internal/service"
	"ndmedia/internal/validation"
)

// TrackerHandler receives scroll and sidebar events from a mounted page.
type TrackerHandler struct {
	service   service.TrackerService
	validator *validation.Validator
}

func NewTrackerHandler(service service.TrackerService) *TrackerHandler {
	return &TrackerHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Scroll godoc
// @Summary Report the scroll position
// @Description Recomputes the active sidebar section and the header style.
// @Tags tracker
// @Accept json
// @Produce json
// @Param viewID path string true "View ID"
// @Param request body dto.ScrollRequest true "Scroll offset, viewport height and anchor bounds"
// @Success 200 {object} dto.ScrollResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /views/{viewID}/tracker/scroll [post]
func (h *TrackerHandler) Scroll(c *fiber.Ctx) error {
	var req dto.ScrollRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateScroll(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.Scroll(c.UserContext(), middleware.ViewID(c), req.ToEvent())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SelectSection godoc
// @Summary Activate a sidebar section
// @Description Returns the scroll target, offset by the fixed header height.
// @Tags tracker
// @Accept json
// @Produce json
// @Param viewID path string true "View ID"
// @Param request body dto.SectionSelectRequest true "Section id and its offset from the top of the document"
// @Success 200 {object} dto.SectionSelectResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /views/{viewID}/tracker/select [post]
func (h *TrackerHandler) SelectSection(c *fiber.Ctx) error {
	var req dto.SectionSelectRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSectionSelect(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SelectSection(c.UserContext(), middleware.ViewID(c), req.SectionID, req.OffsetTop)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

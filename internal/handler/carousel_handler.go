package handler

import (
	"github.com/gofiber/fiber/v2"

	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/middleware"
	"ndmedia/internal/service"
	"ndmedia/internal/validation"
)

// CarouselHandler drives the workshop slideshow.
type CarouselHandler struct {
	service   service.CarouselService
	validator *validation.Validator
}

func NewCarouselHandler(service service.CarouselService) *CarouselHandler {
	return &CarouselHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GetCarousel godoc
// @Summary Get the slideshow position
// @Tags carousel
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} dto.CarouselResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /views/{viewID}/carousel [get]
func (h *CarouselHandler) GetCarousel(c *fiber.Ctx) error {
	resp, err := h.service.Get(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Next godoc
// @Summary Show the next slide, wrapping to the first
// @Tags carousel
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} dto.CarouselResponse
// @Router /views/{viewID}/carousel/next [post]
func (h *CarouselHandler) Next(c *fiber.Ctx) error {
	resp, err := h.service.Next(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Previous godoc
// @Summary Show the previous slide, wrapping to the last
// @Tags carousel
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} dto.CarouselResponse
// @Router /views/{viewID}/carousel/previous [post]
func (h *CarouselHandler) Previous(c *fiber.Ctx) error {
	resp, err := h.service.Previous(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// JumpTo godoc
// @Summary Show a specific slide
// @Description Indexes outside the slide list leave the position unchanged.
// @Tags carousel
// @Accept json
// @Produce json
// @Param viewID path string true "View ID"
// @Param request body dto.JumpRequest true "Slide index"
// @Success 200 {object} dto.CarouselResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /views/{viewID}/carousel/jump [post]
func (h *CarouselHandler) JumpTo(c *fiber.Ctx) error {
	var req dto.JumpRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateJump(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.JumpTo(c.UserContext(), middleware.ViewID(c), *req.Index)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

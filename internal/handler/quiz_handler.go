package handler

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ndmedia/internal/domain"
	"ndmedia/internal/dto"
	"ndmedia/internal/logger"
	"ndmedia/internal/middleware"
	"ndmedia/internal/service"
	"ndmedia/internal/validation"
)

// QuizRenderer renders the quiz card as an HTML fragment.
type QuizRenderer interface {
	RenderQuiz(w io.Writer, quiz dto.QuizResponse) error
}

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	renderer  QuizRenderer
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, renderer QuizRenderer) *QuizHandler {
	return &QuizHandler{
		service:   service,
		renderer:  renderer,
		validator: validation.NewValidator(),
	}
}

// GetQuiz godoc
// @Summary Get the quiz of a view
// @Description Returns the quiz as JSON, or as an HTML fragment with format=html.
// @Tags quiz
// @Produce json,html
// @Param viewID path string true "View ID"
// @Param format query string false "html for a rendered fragment"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /views/{viewID}/quiz [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.Get(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	if c.Query("format") != "html" {
		return c.JSON(quiz)
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderQuiz(&buf, *quiz); err != nil {
		logger.Get().Error("Failed to render quiz", zap.String("view_id", middleware.ViewID(c)), zap.Error(err))
		return domain.NewInternalError("failed to render quiz", err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// SelectOption godoc
// @Summary Answer the current question
// @Description The first selection for a question is final. Later selections report changed=false.
// @Tags quiz
// @Accept json
// @Produce json
// @Param viewID path string true "View ID"
// @Param request body dto.SelectOptionRequest true "Selected option"
// @Success 200 {object} dto.QuizSelectResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /views/{viewID}/quiz/select [post]
func (h *QuizHandler) SelectOption(c *fiber.Ctx) error {
	var req dto.SelectOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateSelectOption(req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SelectOption(c.UserContext(), middleware.ViewID(c), *req.Option)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Advance godoc
// @Summary Move past an answered question
// @Tags quiz
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} dto.QuizResponse
// @Router /views/{viewID}/quiz/advance [post]
func (h *QuizHandler) Advance(c *fiber.Ctx) error {
	quiz, err := h.service.Advance(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// Restart godoc
// @Summary Start the quiz over
// @Tags quiz
// @Produce json
// @Param viewID path string true "View ID"
// @Success 200 {object} dto.QuizResponse
// @Router /views/{viewID}/quiz/restart [post]
func (h *QuizHandler) Restart(c *fiber.Ctx) error {
	quiz, err := h.service.Restart(c.UserContext(), middleware.ViewID(c))
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

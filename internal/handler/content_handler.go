package handler

import (
	"github.com/gofiber/fiber/v2"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
)

// ContentHandler serves the read-only site content as JSON. Quiz answers and
// explanations are never included.
type ContentHandler struct {
	content *content.Content
}

func NewContentHandler(c *content.Content) *ContentHandler {
	return &ContentHandler{content: c}
}

type teamResponse struct {
	Mentors []domain.Person `json:"mentors"`
	Team    []domain.Person `json:"team"`
}

// GetContent godoc
// @Summary Get a content collection
// @Tags content
// @Produce json
// @Param kind path string true "posters, timeline, research, chart, quiz or team"
// @Success 200 {array} object
// @Failure 404 {object} middleware.ErrorResponse
// @Router /content/{kind} [get]
func (h *ContentHandler) GetContent(c *fiber.Ctx) error {
	kind := c.Params("kind")
	switch kind {
	case "posters":
		return c.JSON(h.content.Posters)
	case "timeline":
		return c.JSON(h.content.Timeline)
	case "research":
		return c.JSON(h.content.Research.Topics)
	case "chart":
		return c.JSON(h.content.Research.Chart)
	case "quiz":
		return c.JSON(h.content.Quiz)
	case "team":
		return c.JSON(teamResponse{Mentors: h.content.Contact.Mentors, Team: h.content.Contact.Team})
	}
	return domain.NewNotFoundError("unknown content collection").WithContext("kind", kind)
}

package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ndmedia/internal/dto"
	"ndmedia/internal/logger"
	"ndmedia/internal/service"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	views service.ViewService
}

func NewHealthHandler(views service.ViewService) *HealthHandler {
	return &HealthHandler{views: views}
}

// Health reports whether the view store answers.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	if err := h.views.Ping(ctx); err != nil {
		logger.Get().Warn("View store ping failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable", Store: "down"})
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Store: "up"})
}

package middleware

import (
	"github.com/gofiber/fiber/v2"

	"ndmedia/internal/validation"
)

// LocalViewID is the fiber.Locals key holding the validated view id.
const LocalViewID = "validated_view_id"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateViewID validates the :viewID path parameter.
func (vm *ValidationMiddleware) ValidateViewID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewID := c.Params("viewID")

		if errors := vm.validator.ValidateViewID(viewID); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(LocalViewID, viewID)
		return c.Next()
	}
}

// ViewID returns the id stored by ValidateViewID.
func ViewID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalViewID).(string)
	return id
}

package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/dto"
	"github.com/toolhub/toolhub-backend/internal/services"
	"github.com/toolhub/toolhub-backend/internal/store"
)

// RequireToolAccess gates a tool's routes behind the access check for its
// slug. Every request re-reads the store; access decisions are never
// cached, so a revoke takes effect on the next request.
func RequireToolAccess(st store.Store, accessService *services.AccessService, slug string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		tool, err := st.FindToolBySlug(slug)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error: true, Message: "Tool not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}

		if !accessService.HasAccess(userID, tool.ID) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Access required: unlock this tool first",
			})
		}

		c.Locals("tool", tool)
		return c.Next()
	}
}

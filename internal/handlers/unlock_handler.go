package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/dto"
	"github.com/toolhub/toolhub-backend/internal/middleware"
	"github.com/toolhub/toolhub-backend/internal/services"
)

type UnlockHandler struct {
	unlockService *services.UnlockService
}

func NewUnlockHandler(unlockService *services.UnlockService) *UnlockHandler {
	return &UnlockHandler{unlockService: unlockService}
}

// Unlock runs one unlock-link visit and reports the terminal state.
// Revisiting the same link is always safe: existing access short-circuits
// before any write.
func (h *UnlockHandler) Unlock(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	result := h.unlockService.Unlock(userID, c.Params("slug"))

	resp := dto.UnlockResponse{State: string(result.State)}
	if result.Tool != nil {
		t := toolResponse(result.Tool)
		resp.Tool = &t
	}

	switch result.State {
	case services.UnlockToolNotFound:
		return c.Status(fiber.StatusNotFound).JSON(resp)
	case services.UnlockGrantFailed:
		// Retry-capable: the caller revisits the link.
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	default:
		return c.JSON(resp)
	}
}

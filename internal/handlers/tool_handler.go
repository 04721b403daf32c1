package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/dto"
	"github.com/toolhub/toolhub-backend/internal/middleware"
	"github.com/toolhub/toolhub-backend/internal/models"
	"github.com/toolhub/toolhub-backend/internal/services"
	"github.com/toolhub/toolhub-backend/internal/store"
)

type ToolHandler struct {
	store         store.Store
	accessService *services.AccessService
}

func NewToolHandler(st store.Store, accessService *services.AccessService) *ToolHandler {
	return &ToolHandler{store: st, accessService: accessService}
}

// ListCatalog returns every active tool.
func (h *ToolHandler) ListCatalog(c *fiber.Ctx) error {
	tools, err := h.store.ListActiveTools()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch tools",
		})
	}

	out := make([]dto.ToolResponse, 0, len(tools))
	for _, t := range tools {
		out = append(out, toolResponse(&t))
	}
	return c.JSON(out)
}

// Get is the tool gate: 404 for unknown or inactive slugs, 403 without
// access, else the tool payload.
func (h *ToolHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	tool, err := h.store.FindToolBySlug(c.Params("slug"))
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

	if !h.accessService.HasAccess(userID, tool.ID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Access required: unlock this tool first",
		})
	}

	return c.JSON(toolResponse(tool))
}

// ListMine enumerates the caller's usable tools (or all active tools for
// admins, synthesized).
func (h *ToolHandler) ListMine(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	grants, err := h.accessService.ListUserAccess(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch your tools",
		})
	}

	out := make([]dto.UserToolResponse, 0, len(grants))
	for _, g := range grants {
		out = append(out, dto.UserToolResponse{
			Tool:           toolResponse(&g.Tool),
			LastUnlockedAt: g.LastUnlockedAt,
			UnlockedBy:     g.UnlockedBy,
		})
	}
	return c.JSON(out)
}

func toolResponse(t *models.Tool) dto.ToolResponse {
	return dto.ToolResponse{
		ID:          t.ID,
		Slug:        t.Slug,
		Name:        t.Name,
		Description: t.Description,
	}
}

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/toolhub/toolhub-backend/internal/access"
	"github.com/toolhub/toolhub-backend/internal/dto"
	"github.com/toolhub/toolhub-backend/internal/services"
)

type AdminHandler struct {
	adminService  *services.AdminService
	accessService *services.AccessService
}

func NewAdminHandler(adminService *services.AdminService, accessService *services.AccessService) *AdminHandler {
	return &AdminHandler{adminService: adminService, accessService: accessService}
}

// ListUsers returns all users with non-revoked grant counts; ?q= filters
// by substring over email and name.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	rows, err := h.adminService.ListUsers(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users",
		})
	}
	return c.JSON(rows)
}

// ListUserTools renders the per-user management panel: every active tool
// with the resolved access state and the grant row for display.
func (h *AdminHandler) ListUserTools(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	statuses, err := h.accessService.ListToolAccessForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list tool access",
		})
	}
	return c.JSON(statuses)
}

func (h *AdminHandler) GrantAccess(c *fiber.Ctx) error {
	userID, toolID, ok := parsePair(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user or tool ID",
		})
	}

	if !h.accessService.Grant(userID, toolID, access.ProvenanceAdminGrant) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to grant access",
		})
	}
	return c.JSON(fiber.Map{"message": "Access granted"})
}

func (h *AdminHandler) RevokeAccess(c *fiber.Ctx) error {
	userID, toolID, ok := parsePair(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user or tool ID",
		})
	}

	if !h.accessService.Revoke(userID, toolID) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to revoke access",
		})
	}
	return c.JSON(fiber.Map{"message": "Access revoked"})
}

// ListUnlockLinks returns the shareable unlock URL for every active tool.
func (h *AdminHandler) ListUnlockLinks(c *fiber.Ctx) error {
	links, err := h.adminService.UnlockLinks()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list unlock links",
		})
	}
	return c.JSON(links)
}

func parsePair(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	toolID, err := uuid.Parse(c.Params("toolID"))
	if err != nil {
		return uuid.Nil, uuid.Nil, false
	}
	return userID, toolID, true
}

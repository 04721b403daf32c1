package revenueplan

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/dto"
	"github.com/toolhub/toolhub-backend/internal/middleware"
)

type RevenuePlanHandler struct {
	service *RevenuePlanService
}

func NewRevenuePlanHandler(service *RevenuePlanService) *RevenuePlanHandler {
	return &RevenuePlanHandler{service: service}
}

func (h *RevenuePlanHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	plan, err := h.service.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch revenue plan",
		})
	}

	return c.JSON(plan)
}

func (h *RevenuePlanHandler) Save(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	body := c.Body()
	if len(body) == 0 || !json.Valid(body) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	plan, err := h.service.Save(userID, body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save revenue plan",
		})
	}

	return c.JSON(plan)
}

func (h *RevenuePlanHandler) Summary(c *fiber.Ctx) error {
	var req SummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	return c.JSON(Summarize(&req))
}

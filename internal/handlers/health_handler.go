package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/database"
	"github.com/toolhub/toolhub-backend/internal/dto"
	"github.com/toolhub/toolhub-backend/internal/store"
)

type HealthHandler struct {
	store store.Store
}

func NewHealthHandler(st store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	toolCount := 0
	if tools, err := h.store.ListActiveTools(); err == nil {
		toolCount = len(tools)
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		ToolCount: toolCount,
	})
}

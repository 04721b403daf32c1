package revenueplan

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/tools"
	"gorm.io/gorm"
)

type RevenuePlanPlugin struct{}

func New() *RevenuePlanPlugin {
	return &RevenuePlanPlugin{}
}

func (p *RevenuePlanPlugin) Descriptor() tools.Descriptor {
	return tools.Descriptor{
		Slug:        "pmu-revenue-planner",
		Name:        "PMU Revenue Planner",
		Description: "Multi-step revenue planning wizard for PMU service businesses",
	}
}

func (p *RevenuePlanPlugin) Models() []interface{} {
	return []interface{}{
		&RevenuePlan{},
	}
}

func (p *RevenuePlanPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB) {
	svc := NewRevenuePlanService(db)
	handler := NewRevenuePlanHandler(svc)

	router.Get("/plan", handler.Get)
	router.Put("/plan", handler.Save)
	router.Post("/summary", handler.Summary)
}

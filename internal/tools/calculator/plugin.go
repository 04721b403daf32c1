package calculator

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/tools"
	"gorm.io/gorm"
)

type CalculatorPlugin struct{}

func New() *CalculatorPlugin {
	return &CalculatorPlugin{}
}

func (p *CalculatorPlugin) Descriptor() tools.Descriptor {
	return tools.Descriptor{
		Slug:        "calculator",
		Name:        "Calculator",
		Description: "Advanced calculator with basic arithmetic operations",
	}
}

func (p *CalculatorPlugin) Models() []interface{} {
	return nil
}

func (p *CalculatorPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB) {
	handler := NewCalculatorHandler()
	router.Post("/evaluate", handler.Evaluate)
}

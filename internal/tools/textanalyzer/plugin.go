package textanalyzer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/tools"
	"gorm.io/gorm"
)

type TextAnalyzerPlugin struct{}

func New() *TextAnalyzerPlugin {
	return &TextAnalyzerPlugin{}
}

func (p *TextAnalyzerPlugin) Descriptor() tools.Descriptor {
	return tools.Descriptor{
		Slug:        "text-analyzer",
		Name:        "Text Analyzer",
		Description: "Comprehensive text analysis and metrics tool",
	}
}

func (p *TextAnalyzerPlugin) Models() []interface{} {
	return nil
}

func (p *TextAnalyzerPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB) {
	handler := NewTextAnalyzerHandler()
	router.Post("/analyze", handler.Analyze)
}

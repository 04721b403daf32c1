package reviewlinks

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/tools"
	"gorm.io/gorm"
)

type ReviewLinksPlugin struct{}

func New() *ReviewLinksPlugin {
	return &ReviewLinksPlugin{}
}

func (p *ReviewLinksPlugin) Descriptor() tools.Descriptor {
	return tools.Descriptor{
		Slug:        "review-link-generator",
		Name:        "Review Link Generator",
		Description: "Generate direct review links for Google My Business and Facebook pages",
	}
}

func (p *ReviewLinksPlugin) Models() []interface{} {
	return []interface{}{
		&ReviewLink{},
	}
}

func (p *ReviewLinksPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB) {
	svc := NewReviewLinkService(db)
	handler := NewReviewLinkHandler(svc)

	router.Get("/links", handler.Get)
	router.Post("/links", handler.Save)
}

package tools

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Descriptor is the catalog identity of a tool plugin; it seeds the tools
// table at boot.
type Descriptor struct {
	Slug        string
	Name        string
	Description string
}

// Plugin defines the interface every gated tool implements.
type Plugin interface {
	// Descriptor returns the tool's catalog identity.
	Descriptor() Descriptor

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts the tool's routes on the given Fiber group.
	// The group is already prefixed with /api/t/{slug} and has JWT plus
	// the per-tool access gate applied.
	RegisterRoutes(router fiber.Router, db *gorm.DB)
}

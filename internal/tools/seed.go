package tools

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/toolhub/toolhub-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCatalog upserts one tools row per registered plugin, keyed by slug.
// Name and description follow the plugin; is_active is left alone so an
// operator deactivation survives restarts. New tools default to active.
func SeedCatalog(db *gorm.DB, plugins []Plugin) error {
	for _, p := range plugins {
		d := p.Descriptor()
		tool := models.Tool{
			ID:          uuid.New(),
			Slug:        d.Slug,
			Name:        d.Name,
			Description: d.Description,
			IsActive:    true,
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"name":        d.Name,
				"description": d.Description,
			}),
		}).Create(&tool).Error
		if err != nil {
			return fmt.Errorf("failed to seed tool %s: %w", d.Slug, err)
		}
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tool is one row of the gated tool catalog. The access layer treats the
// catalog as read-only apart from boot-time seeding; inactive tools resolve
// as not-found everywhere, including for admins.
type Tool struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string    `gorm:"not null;size:100;uniqueIndex" json:"slug"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

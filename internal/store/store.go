// Package store defines the persistence contract the access core depends
// on, and its GORM/Postgres implementation. Services take the Store
// interface explicitly; nothing reaches into ambient database state.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/toolhub/toolhub-backend/internal/models"
)

// ErrNotFound is returned when a lookup resolves no row. It is an expected
// condition, never a store failure.
var ErrNotFound = errors.New("record not found")

// AdminUserRow is a user joined with its count of non-revoked grant rows.
// Virtual admin access is deliberately not counted: admins are being
// managed here, not consuming.
type AdminUserRow struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ToolCount int64     `json:"tool_count"`
}

// Store is everything the access core and the admin surface need from
// persistence. A single-row upsert/update is the strongest atomicity any
// method requires.
type Store interface {
	FindUserRole(userID uuid.UUID) (string, error)

	// FindToolBySlug resolves active tools only.
	FindToolBySlug(slug string) (*models.Tool, error)
	// FindToolByID resolves the tool regardless of activity; callers
	// check IsActive themselves.
	FindToolByID(toolID uuid.UUID) (*models.Tool, error)
	ListActiveTools() ([]models.Tool, error)

	// UpsertAccessGrant inserts or updates the single row for the pair,
	// refreshing last_unlocked_at/unlocked_by and clearing
	// last_revoked_at.
	UpsertAccessGrant(userID, toolID uuid.UUID, unlockedBy string) error
	// SoftRevokeAccessGrant stamps last_revoked_at; revoking an absent
	// row is a successful no-op.
	SoftRevokeAccessGrant(userID, toolID uuid.UUID) error
	FindAccessGrant(userID, toolID uuid.UUID) (*models.UserToolAccess, error)
	// ListAccessGrantsForUser returns non-revoked rows joined with their
	// tools, active tools only.
	ListAccessGrantsForUser(userID uuid.UUID) ([]models.UserToolAccess, error)
	CountNonRevokedGrantsForUser(userID uuid.UUID) (int64, error)

	// ListUsers enumerates users with non-revoked grant counts, newest
	// first, optionally filtered by a case-insensitive substring over
	// email and name.
	ListUsers(query string) ([]AdminUserRow, error)
}

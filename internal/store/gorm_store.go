package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/toolhub/toolhub-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserRole(userID uuid.UUID) (string, error) {
	var user models.User
	err := s.db.Select("role").First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve user role: %w", err)
	}
	return user.Role, nil
}

func (s *GormStore) FindToolBySlug(slug string) (*models.Tool, error) {
	var tool models.Tool
	err := s.db.Where("slug = ? AND is_active = true", slug).First(&tool).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tool by slug: %w", err)
	}
	return &tool, nil
}

func (s *GormStore) FindToolByID(toolID uuid.UUID) (*models.Tool, error) {
	var tool models.Tool
	err := s.db.First(&tool, "id = ?", toolID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tool by id: %w", err)
	}
	return &tool, nil
}

func (s *GormStore) ListActiveTools() ([]models.Tool, error) {
	var tools []models.Tool
	if err := s.db.Where("is_active = true").Order("name").Find(&tools).Error; err != nil {
		return nil, fmt.Errorf("failed to list active tools: %w", err)
	}
	return tools, nil
}

// UpsertAccessGrant relies on the (user_id, tool_id) unique index: two
// concurrent grants for the same pair both succeed and converge to one row.
func (s *GormStore) UpsertAccessGrant(userID, toolID uuid.UUID, unlockedBy string) error {
	now := time.Now().UTC()
	grant := models.UserToolAccess{
		ID:             uuid.New(),
		UserID:         userID,
		ToolID:         toolID,
		LastUnlockedAt: now,
		UnlockedBy:     unlockedBy,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "tool_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"last_unlocked_at": now,
			"unlocked_by":      unlockedBy,
			"last_revoked_at":  nil,
		}),
	}).Create(&grant).Error
	if err != nil {
		return fmt.Errorf("failed to upsert access grant: %w", err)
	}
	return nil
}

func (s *GormStore) SoftRevokeAccessGrant(userID, toolID uuid.UUID) error {
	err := s.db.Model(&models.UserToolAccess{}).
		Where("user_id = ? AND tool_id = ?", userID, toolID).
		Update("last_revoked_at", time.Now().UTC()).Error
	if err != nil {
		return fmt.Errorf("failed to revoke access grant: %w", err)
	}
	return nil
}

func (s *GormStore) FindAccessGrant(userID, toolID uuid.UUID) (*models.UserToolAccess, error) {
	var grant models.UserToolAccess
	err := s.db.Where("user_id = ? AND tool_id = ?", userID, toolID).First(&grant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find access grant: %w", err)
	}
	return &grant, nil
}

func (s *GormStore) ListAccessGrantsForUser(userID uuid.UUID) ([]models.UserToolAccess, error) {
	var grants []models.UserToolAccess
	err := s.db.Preload("Tool").
		Joins("JOIN tools ON tools.id = user_tool_access.tool_id AND tools.is_active = true").
		Where("user_tool_access.user_id = ? AND user_tool_access.last_revoked_at IS NULL", userID).
		Order("user_tool_access.last_unlocked_at DESC").
		Find(&grants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list access grants: %w", err)
	}
	return grants, nil
}

func (s *GormStore) CountNonRevokedGrantsForUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Model(&models.UserToolAccess{}).
		Where("user_id = ? AND last_revoked_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count access grants: %w", err)
	}
	return count, nil
}

func (s *GormStore) ListUsers(query string) ([]AdminUserRow, error) {
	var rows []AdminUserRow
	q := s.db.Model(&models.User{}).
		Select("users.id, users.email, users.name, users.role, users.created_at, COUNT(user_tool_access.id) AS tool_count").
		Joins("LEFT JOIN user_tool_access ON user_tool_access.user_id = users.id AND user_tool_access.last_revoked_at IS NULL").
		Group("users.id").
		Order("users.created_at DESC")

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(users.email) LIKE ? OR LOWER(users.name) LIKE ?", like, like)
	}

	if err := q.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return rows, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserToolAccess records that a user was granted a tool, and whether that
// grant is currently revoked. At most one row exists per (user, tool) pair;
// re-granting upserts the same row. Revoke is a soft operation: the row is
// kept with LastRevokedAt set so the latest grant/revoke event stays
// auditable.
type UserToolAccess struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_tool" json:"user_id"`
	ToolID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_user_tool" json:"tool_id"`
	LastUnlockedAt time.Time  `gorm:"not null" json:"last_unlocked_at"`
	LastRevokedAt  *time.Time `json:"last_revoked_at"`
	UnlockedBy     string     `gorm:"size:50;not null" json:"unlocked_by"`
	Tool           Tool       `gorm:"foreignKey:ToolID" json:"tool"`
}

func (UserToolAccess) TableName() string {
	return "user_tool_access"
}

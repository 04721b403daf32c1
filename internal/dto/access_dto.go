package dto

import (
	"time"

	"github.com/google/uuid"
)

type ToolResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// UnlockResponse reports the terminal state of one unlock-link visit.
type UnlockResponse struct {
	State string        `json:"state"`
	Tool  *ToolResponse `json:"tool,omitempty"`
}

type UserToolResponse struct {
	Tool           ToolResponse `json:"tool"`
	LastUnlockedAt time.Time    `json:"last_unlocked_at"`
	UnlockedBy     string       `json:"unlocked_by"`
}

package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/toolhub/toolhub-backend/internal/access"
	"github.com/toolhub/toolhub-backend/internal/models"
	"github.com/toolhub/toolhub-backend/internal/store"
)

// UnlockState is the terminal state of one unlock-link visit. Every visit
// is a complete, independent transition; nothing persists between visits.
type UnlockState string

const (
	UnlockToolNotFound    UnlockState = "tool_not_found"
	UnlockAlreadyUnlocked UnlockState = "already_unlocked"
	UnlockGrantFailed     UnlockState = "grant_failed"
	UnlockNewlyUnlocked   UnlockState = "newly_unlocked"
)

type UnlockResult struct {
	State UnlockState
	Tool  *models.Tool
}

type UnlockService struct {
	store  store.Store
	access *AccessService
}

func NewUnlockService(st store.Store, accessService *AccessService) *UnlockService {
	return &UnlockService{store: st, access: accessService}
}

// Unlock runs the linear grant-if-absent flow for one visit. There are no
// internal retries: revisiting the URL is the retry, which is safe because
// existing access short-circuits before any write.
func (s *UnlockService) Unlock(userID uuid.UUID, slug string) UnlockResult {
	tool, err := s.store.FindToolBySlug(slug)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("unlock tool lookup failed", "action", "unlock", "slug", slug, "error", err.Error())
		}
		return UnlockResult{State: UnlockToolNotFound}
	}

	if s.access.HasAccess(userID, tool.ID) {
		return UnlockResult{State: UnlockAlreadyUnlocked, Tool: tool}
	}

	if !s.access.Grant(userID, tool.ID, access.ProvenanceURLUnlock) {
		return UnlockResult{State: UnlockGrantFailed, Tool: tool}
	}

	slog.Info("tool unlocked via link", "action", "unlock", "user_id", userID.String(), "slug", slug)
	return UnlockResult{State: UnlockNewlyUnlocked, Tool: tool}
}

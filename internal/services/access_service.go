package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/toolhub/toolhub-backend/internal/access"
	"github.com/toolhub/toolhub-backend/internal/models"
	"github.com/toolhub/toolhub-backend/internal/store"
)

var ErrInvalidProvenance = errors.New("unlocked_by must be url_unlock or admin_grant")

// ToolAccessStatus is one row of the admin management panel: a tool, the
// resolved access decision, and the current grant row (if any) for display.
type ToolAccessStatus struct {
	Tool      models.Tool            `json:"tool"`
	HasAccess bool                   `json:"has_access"`
	Grant     *models.UserToolAccess `json:"grant,omitempty"`
}

// AccessService is the single source of truth for "can user U use tool T"
// and the only writer of grant rows.
type AccessService struct {
	store store.Store
}

func NewAccessService(st store.Store) *AccessService {
	return &AccessService{store: st}
}

// HasAccess is a security gate: any store or identity failure denies.
// Admins short-circuit on role once the tool is known active; everyone
// else needs a non-revoked grant row.
func (s *AccessService) HasAccess(userID, toolID uuid.UUID) bool {
	tool, err := s.store.FindToolByID(toolID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("access check failed closed", "action", "has_access", "user_id", userID.String(), "error", err.Error())
		}
		return false
	}
	if !tool.IsActive {
		return false
	}

	role, err := s.store.FindUserRole(userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("access check failed closed", "action", "has_access", "user_id", userID.String(), "error", err.Error())
		}
		return false
	}

	policy := access.ForRole(role)
	if policy.Virtual() {
		return true
	}

	grant, err := s.store.FindAccessGrant(userID, toolID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("access check failed closed", "action", "has_access", "user_id", userID.String(), "error", err.Error())
		}
		return false
	}
	return policy.Allows(access.StateOf(grant))
}

// Grant upserts the single row for the pair. Granting an already-granted
// tool refreshes timestamps and stays true throughout; granting after a
// revoke re-activates the row.
func (s *AccessService) Grant(userID, toolID uuid.UUID, unlockedBy string) bool {
	if !access.ValidProvenance(unlockedBy) {
		slog.Error("rejected grant with bad provenance", "action", "grant_access", "user_id", userID.String(), "unlocked_by", unlockedBy)
		return false
	}
	if err := s.store.UpsertAccessGrant(userID, toolID, unlockedBy); err != nil {
		slog.Error("grant failed", "action", "grant_access", "user_id", userID.String(), "error", err.Error())
		return false
	}
	return true
}

// Revoke soft-deletes the grant; the row survives for audit. Revoking a
// pair with no row reports success. Note for operators: revoking a tool
// for an admin does nothing observable, because admin access is computed
// from the role, not the grant table.
func (s *AccessService) Revoke(userID, toolID uuid.UUID) bool {
	if err := s.store.SoftRevokeAccessGrant(userID, toolID); err != nil {
		slog.Error("revoke failed", "action", "revoke_access", "user_id", userID.String(), "error", err.Error())
		return false
	}
	return true
}

// ListUserAccess enumerates what the user can use. The branch on role
// happens before any store choice: admins get every active tool as a
// synthesized entry that never touches the grant table, regular users
// get their non-revoked rows joined with tools.
func (s *AccessService) ListUserAccess(userID uuid.UUID) ([]models.UserToolAccess, error) {
	role, err := s.store.FindUserRole(userID)
	if err != nil {
		return nil, err
	}

	if access.ForRole(role).Virtual() {
		tools, err := s.store.ListActiveTools()
		if err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		entries := make([]models.UserToolAccess, 0, len(tools))
		for _, t := range tools {
			entries = append(entries, models.UserToolAccess{
				UserID:         userID,
				ToolID:         t.ID,
				LastUnlockedAt: now,
				UnlockedBy:     access.ProvenanceAdminPrivilege,
				Tool:           t,
			})
		}
		return entries, nil
	}

	return s.store.ListAccessGrantsForUser(userID)
}

// ListToolAccessForUser resolves, for every active tool, the access
// decision plus the raw grant row so the admin panel can show unlock and
// revoke dates alongside the toggle.
func (s *AccessService) ListToolAccessForUser(userID uuid.UUID) ([]ToolAccessStatus, error) {
	tools, err := s.store.ListActiveTools()
	if err != nil {
		return nil, err
	}

	role, err := s.store.FindUserRole(userID)
	if err != nil {
		return nil, err
	}
	policy := access.ForRole(role)

	statuses := make([]ToolAccessStatus, 0, len(tools))
	for _, t := range tools {
		grant, err := s.store.FindAccessGrant(userID, t.ID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		statuses = append(statuses, ToolAccessStatus{
			Tool:      t,
			HasAccess: policy.Allows(access.StateOf(grant)),
			Grant:     grant,
		})
	}
	return statuses, nil
}

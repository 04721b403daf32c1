// Package access holds the vocabulary of the tool-access core: grant
// provenance tags, the two-variant grant status, and the per-role policy
// that decides whether a subject may use a tool.
package access

import (
	"time"

	"github.com/toolhub/toolhub-backend/internal/models"
)

// Provenance tags recording how a grant came to be. AdminPrivilege is a
// sentinel used only for synthesized admin entries; it is never persisted.
const (
	ProvenanceURLUnlock      = "url_unlock"
	ProvenanceAdminGrant     = "admin_grant"
	ProvenanceAdminPrivilege = "admin_privilege"
)

// ValidProvenance reports whether by may be written to a grant row.
func ValidProvenance(by string) bool {
	return by == ProvenanceURLUnlock || by == ProvenanceAdminGrant
}

// Status is the explicit two-variant reading of a grant row's
// last_revoked_at column.
type Status int

const (
	StatusActive Status = iota
	StatusRevoked
)

// StatusOf derives the grant status from the nullable revoke timestamp.
// This is the only place the null-check lives.
func StatusOf(lastRevokedAt *time.Time) Status {
	if lastRevokedAt != nil {
		return StatusRevoked
	}
	return StatusActive
}

// GrantState is what a policy sees about a (user, tool) pair: whether a
// row exists at all, and if so whether it is revoked.
type GrantState struct {
	Exists bool
	Status Status
}

func StateOf(g *models.UserToolAccess) GrantState {
	if g == nil {
		return GrantState{}
	}
	return GrantState{Exists: true, Status: StatusOf(g.LastRevokedAt)}
}

// Policy decides access to an active tool. Callers resolve the tool's
// activity before consulting the policy; inactive tools never reach it.
type Policy interface {
	// Allows reports whether the subject may use the tool given its
	// grant row state.
	Allows(g GrantState) bool

	// Virtual reports whether access derives from the role alone. When
	// true, no grant row is read or written for access checks, and
	// enumeration synthesizes entries instead of querying the store.
	Virtual() bool
}

// RoleBased grants everything by virtue of the admin role. Revoking a
// persisted grant for an admin has no effect on this policy; only a role
// change or catalog deactivation removes admin access.
type RoleBased struct{}

func (RoleBased) Allows(GrantState) bool { return true }
func (RoleBased) Virtual() bool          { return true }

// GrantBased requires a persisted, non-revoked grant row.
type GrantBased struct{}

func (GrantBased) Allows(g GrantState) bool { return g.Exists && g.Status == StatusActive }
func (GrantBased) Virtual() bool            { return false }

// ForRole selects the policy for a resolved role, once per request.
func ForRole(role string) Policy {
	if role == models.RoleAdmin {
		return RoleBased{}
	}
	return GrantBased{}
}

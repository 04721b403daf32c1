package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolhub/toolhub-backend/internal/access"
	"github.com/toolhub/toolhub-backend/internal/models"
	"github.com/toolhub/toolhub-backend/internal/services"
)

func TestGrantIsIdempotent(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	user := st.addUser(models.RoleUser)
	tool := st.addTool("calculator", true)

	require.True(t, svc.Grant(user, tool.ID, access.ProvenanceURLUnlock))
	assert.True(t, svc.HasAccess(user, tool.ID))

	first, err := st.FindAccessGrant(user, tool.ID)
	require.NoError(t, err)

	require.True(t, svc.Grant(user, tool.ID, access.ProvenanceAdminGrant))
	assert.True(t, svc.HasAccess(user, tool.ID))

	second, err := st.FindAccessGrant(user, tool.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, len(st.grants), "one row per (user, tool) pair")
	assert.Equal(t, first.ID, second.ID, "second grant updates the same row")
	assert.Equal(t, access.ProvenanceAdminGrant, second.UnlockedBy)
	assert.False(t, second.LastUnlockedAt.Before(first.LastUnlockedAt))
}

func TestRevokeIsIdempotent(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	user := st.addUser(models.RoleUser)
	tool := st.addTool("calculator", true)

	// Revoking a pair that was never granted succeeds and grants nothing.
	assert.True(t, svc.Revoke(user, tool.ID))
	assert.False(t, svc.HasAccess(user, tool.ID))
	assert.Empty(t, st.grants)

	require.True(t, svc.Grant(user, tool.ID, access.ProvenanceURLUnlock))
	assert.True(t, svc.Revoke(user, tool.ID))
	assert.False(t, svc.HasAccess(user, tool.ID))
	assert.True(t, svc.Revoke(user, tool.ID), "second revoke still succeeds")
	assert.False(t, svc.HasAccess(user, tool.ID))
}

func TestGrantRevokeGrantCycle(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	user := st.addUser(models.RoleUser)
	tool := st.addTool("text-analyzer", true)

	require.True(t, svc.Grant(user, tool.ID, access.ProvenanceURLUnlock))
	require.True(t, svc.Revoke(user, tool.ID))

	revoked, err := st.FindAccessGrant(user, tool.ID)
	require.NoError(t, err)
	require.NotNil(t, revoked.LastRevokedAt, "revoke keeps the row for audit")

	require.True(t, svc.Grant(user, tool.ID, access.ProvenanceAdminGrant))
	assert.True(t, svc.HasAccess(user, tool.ID))

	regranted, err := st.FindAccessGrant(user, tool.ID)
	require.NoError(t, err)
	assert.Nil(t, regranted.LastRevokedAt, "re-grant clears the revoke stamp")
	assert.Equal(t, revoked.ID, regranted.ID)
}

func TestGrantRejectsUnknownProvenance(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	user := st.addUser(models.RoleUser)
	tool := st.addTool("calculator", true)

	assert.False(t, svc.Grant(user, tool.ID, "self_service"))
	assert.False(t, svc.Grant(user, tool.ID, access.ProvenanceAdminPrivilege), "virtual provenance is never persisted")
	assert.Empty(t, st.grants)
}

func TestAdminHasVirtualAccess(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	admin := st.addUser(models.RoleAdmin)
	active := st.addTool("calculator", true)
	inactive := st.addTool("legacy-tool", false)

	assert.True(t, svc.HasAccess(admin, active.ID), "admin needs no grant row")
	assert.Empty(t, st.grants, "virtual access writes nothing")
	assert.False(t, svc.HasAccess(admin, inactive.ID), "inactive tools are gated even for admins")
}

func TestRevokeDoesNotAffectAdminAccess(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	admin := st.addUser(models.RoleAdmin)
	tool := st.addTool("calculator", true)

	require.True(t, svc.Grant(admin, tool.ID, access.ProvenanceAdminGrant))
	require.True(t, svc.Revoke(admin, tool.ID))
	assert.True(t, svc.HasAccess(admin, tool.ID), "access comes from the role, not the row")
}

func TestHasAccessFailsClosed(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	user := st.addUser(models.RoleUser)
	tool := st.addTool("calculator", true)
	require.True(t, svc.Grant(user, tool.ID, access.ProvenanceURLUnlock))

	st.failReads = true
	assert.False(t, svc.HasAccess(user, tool.ID), "store failure denies")

	st.failReads = false
	assert.False(t, svc.HasAccess(uuid.New(), tool.ID), "unknown user denies")
	assert.False(t, svc.HasAccess(user, uuid.New()), "unknown tool denies")
}

func TestListUserAccessBranchesOnRole(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	admin := st.addUser(models.RoleAdmin)
	user := st.addUser(models.RoleUser)
	calc := st.addTool("calculator", true)
	analyzer := st.addTool("text-analyzer", true)
	st.addTool("legacy-tool", false)

	// Admin sees every active tool as a synthesized virtual entry.
	entries, err := svc.ListUserAccess(admin)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, access.ProvenanceAdminPrivilege, e.UnlockedBy)
		assert.Equal(t, uuid.Nil, e.ID, "virtual entries are not persisted rows")
	}
	assert.Empty(t, st.grants, "admin enumeration never touches the grant table")

	// Regular users see their non-revoked grants only.
	require.True(t, svc.Grant(user, calc.ID, access.ProvenanceURLUnlock))
	require.True(t, svc.Grant(user, analyzer.ID, access.ProvenanceURLUnlock))
	require.True(t, svc.Revoke(user, analyzer.ID))

	entries, err = svc.ListUserAccess(user)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, calc.ID, entries[0].ToolID)
	assert.Equal(t, "calculator", entries[0].Tool.Slug)
}

func TestListToolAccessForUser(t *testing.T) {
	st := newMemStore()
	svc := services.NewAccessService(st)
	user := st.addUser(models.RoleUser)
	calc := st.addTool("calculator", true)
	analyzer := st.addTool("text-analyzer", true)

	require.True(t, svc.Grant(user, calc.ID, access.ProvenanceURLUnlock))
	require.True(t, svc.Grant(user, analyzer.ID, access.ProvenanceURLUnlock))
	require.True(t, svc.Revoke(user, analyzer.ID))

	statuses, err := svc.ListToolAccessForUser(user)
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	byID := make(map[uuid.UUID]services.ToolAccessStatus, len(statuses))
	for _, s := range statuses {
		byID[s.Tool.ID] = s
	}

	assert.True(t, byID[calc.ID].HasAccess)
	require.NotNil(t, byID[calc.ID].Grant)

	assert.False(t, byID[analyzer.ID].HasAccess)
	require.NotNil(t, byID[analyzer.ID].Grant, "revoked row still surfaces for the revoke date")
	assert.NotNil(t, byID[analyzer.ID].Grant.LastRevokedAt)
}

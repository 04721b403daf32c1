package services_test

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/toolhub/toolhub-backend/internal/models"
	"github.com/toolhub/toolhub-backend/internal/store"
)

var errBoom = errors.New("store blew up")

type pairKey struct {
	userID uuid.UUID
	toolID uuid.UUID
}

// memStore is an in-memory store.Store used to verify the access core
// without a database. Call counters let tests assert exactly how many
// writes fired.
type memStore struct {
	roles  map[uuid.UUID]string
	tools  map[uuid.UUID]models.Tool
	grants map[pairKey]*models.UserToolAccess
	users  []store.AdminUserRow

	upsertCalls int
	revokeCalls int

	failUpserts bool
	failReads   bool
}

func newMemStore() *memStore {
	return &memStore{
		roles:  make(map[uuid.UUID]string),
		tools:  make(map[uuid.UUID]models.Tool),
		grants: make(map[pairKey]*models.UserToolAccess),
	}
}

func (m *memStore) addUser(role string) uuid.UUID {
	id := uuid.New()
	m.roles[id] = role
	return id
}

func (m *memStore) addTool(slug string, active bool) models.Tool {
	t := models.Tool{ID: uuid.New(), Slug: slug, Name: slug, IsActive: active}
	m.tools[t.ID] = t
	return t
}

func (m *memStore) FindUserRole(userID uuid.UUID) (string, error) {
	if m.failReads {
		return "", errBoom
	}
	role, ok := m.roles[userID]
	if !ok {
		return "", store.ErrNotFound
	}
	return role, nil
}

func (m *memStore) FindToolBySlug(slug string) (*models.Tool, error) {
	if m.failReads {
		return nil, errBoom
	}
	for _, t := range m.tools {
		if t.Slug == slug && t.IsActive {
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) FindToolByID(toolID uuid.UUID) (*models.Tool, error) {
	if m.failReads {
		return nil, errBoom
	}
	t, ok := m.tools[toolID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (m *memStore) ListActiveTools() ([]models.Tool, error) {
	if m.failReads {
		return nil, errBoom
	}
	var out []models.Tool
	for _, t := range m.tools {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) UpsertAccessGrant(userID, toolID uuid.UUID, unlockedBy string) error {
	m.upsertCalls++
	if m.failUpserts {
		return errBoom
	}
	now := time.Now().UTC()
	key := pairKey{userID, toolID}
	if g, ok := m.grants[key]; ok {
		g.LastUnlockedAt = now
		g.UnlockedBy = unlockedBy
		g.LastRevokedAt = nil
		return nil
	}
	m.grants[key] = &models.UserToolAccess{
		ID:             uuid.New(),
		UserID:         userID,
		ToolID:         toolID,
		LastUnlockedAt: now,
		UnlockedBy:     unlockedBy,
	}
	return nil
}

func (m *memStore) SoftRevokeAccessGrant(userID, toolID uuid.UUID) error {
	m.revokeCalls++
	if g, ok := m.grants[pairKey{userID, toolID}]; ok {
		now := time.Now().UTC()
		g.LastRevokedAt = &now
	}
	return nil
}

func (m *memStore) FindAccessGrant(userID, toolID uuid.UUID) (*models.UserToolAccess, error) {
	if m.failReads {
		return nil, errBoom
	}
	g, ok := m.grants[pairKey{userID, toolID}]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *g
	return &copied, nil
}

func (m *memStore) ListAccessGrantsForUser(userID uuid.UUID) ([]models.UserToolAccess, error) {
	if m.failReads {
		return nil, errBoom
	}
	var out []models.UserToolAccess
	for key, g := range m.grants {
		if key.userID != userID || g.LastRevokedAt != nil {
			continue
		}
		tool, ok := m.tools[key.toolID]
		if !ok || !tool.IsActive {
			continue
		}
		copied := *g
		copied.Tool = tool
		out = append(out, copied)
	}
	return out, nil
}

func (m *memStore) CountNonRevokedGrantsForUser(userID uuid.UUID) (int64, error) {
	var count int64
	for key, g := range m.grants {
		if key.userID == userID && g.LastRevokedAt == nil {
			count++
		}
	}
	return count, nil
}

func (m *memStore) ListUsers(query string) ([]store.AdminUserRow, error) {
	if m.failReads {
		return nil, errBoom
	}
	if query == "" {
		return m.users, nil
	}
	q := strings.ToLower(query)
	var out []store.AdminUserRow
	for _, u := range m.users {
		if strings.Contains(strings.ToLower(u.Email), q) || strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, u)
		}
	}
	return out, nil
}

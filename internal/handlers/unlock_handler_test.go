package handlers_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolhub/toolhub-backend/internal/dto"
	"github.com/toolhub/toolhub-backend/internal/handlers"
	"github.com/toolhub/toolhub-backend/internal/models"
	"github.com/toolhub/toolhub-backend/internal/services"
	"github.com/toolhub/toolhub-backend/internal/store"
)

// authAs injects a parsed token the way the JWT middleware would, so
// handler behavior can be tested without minting real tokens.
func authAs(userID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": userID.String()}})
		return c.Next()
	}
}

type unlockFixture struct {
	app  *fiber.App
	st   *stubStore
	user uuid.UUID
}

func newUnlockApp(t *testing.T) *unlockFixture {
	t.Helper()
	st := &stubStore{
		roles:  map[uuid.UUID]string{},
		tools:  map[string]models.Tool{},
		grants: map[uuid.UUID]*models.UserToolAccess{},
	}
	user := uuid.New()
	st.roles[user] = models.RoleUser

	accessService := services.NewAccessService(st)
	handler := handlers.NewUnlockHandler(services.NewUnlockService(st, accessService))

	app := fiber.New()
	app.Get("/api/unlock/:slug", authAs(user), handler.Unlock)
	return &unlockFixture{app: app, st: st, user: user}
}

func doUnlock(t *testing.T, app *fiber.App, slug string) (int, dto.UnlockResponse) {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/unlock/"+slug, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out dto.UnlockResponse
	require.NoError(t, json.Unmarshal(body, &out))
	return resp.StatusCode, out
}

func TestUnlockRouteNewThenAlready(t *testing.T) {
	f := newUnlockApp(t)
	tool := models.Tool{ID: uuid.New(), Slug: "calculator", Name: "Calculator", IsActive: true}
	f.st.tools[tool.Slug] = tool

	status, out := doUnlock(t, f.app, "calculator")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(services.UnlockNewlyUnlocked), out.State)
	require.NotNil(t, out.Tool)
	assert.Equal(t, "calculator", out.Tool.Slug)

	status, out = doUnlock(t, f.app, "calculator")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, string(services.UnlockAlreadyUnlocked), out.State)
}

func TestUnlockRouteUnknownSlug(t *testing.T) {
	f := newUnlockApp(t)

	status, out := doUnlock(t, f.app, "nope")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, string(services.UnlockToolNotFound), out.State)
	assert.Nil(t, out.Tool)
}

func TestUnlockRouteGrantFailure(t *testing.T) {
	f := newUnlockApp(t)
	tool := models.Tool{ID: uuid.New(), Slug: "calculator", Name: "Calculator", IsActive: true}
	f.st.tools[tool.Slug] = tool
	f.st.failWrites = true

	status, out := doUnlock(t, f.app, "calculator")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, string(services.UnlockGrantFailed), out.State)
}

func TestUnlockRouteWithoutToken(t *testing.T) {
	st := &stubStore{roles: map[uuid.UUID]string{}, tools: map[string]models.Tool{}, grants: map[uuid.UUID]*models.UserToolAccess{}}
	handler := handlers.NewUnlockHandler(services.NewUnlockService(st, services.NewAccessService(st)))

	app := fiber.New()
	app.Get("/api/unlock/:slug", handler.Unlock)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/unlock/calculator", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// stubStore is the minimal store.Store for routing tests. Access-core
// behavior has its own suite; this only has to move the handler through
// its states.
type stubStore struct {
	roles      map[uuid.UUID]string
	tools      map[string]models.Tool
	grants     map[uuid.UUID]*models.UserToolAccess // keyed by tool ID, single test user
	failWrites bool
}

func (s *stubStore) FindUserRole(userID uuid.UUID) (string, error) {
	role, ok := s.roles[userID]
	if !ok {
		return "", store.ErrNotFound
	}
	return role, nil
}

func (s *stubStore) FindToolBySlug(slug string) (*models.Tool, error) {
	t, ok := s.tools[slug]
	if !ok || !t.IsActive {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (s *stubStore) FindToolByID(toolID uuid.UUID) (*models.Tool, error) {
	for _, t := range s.tools {
		if t.ID == toolID {
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubStore) ListActiveTools() ([]models.Tool, error) {
	var out []models.Tool
	for _, t := range s.tools {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubStore) UpsertAccessGrant(userID, toolID uuid.UUID, unlockedBy string) error {
	if s.failWrites {
		return errStub
	}
	s.grants[toolID] = &models.UserToolAccess{ID: uuid.New(), UserID: userID, ToolID: toolID, UnlockedBy: unlockedBy}
	return nil
}

func (s *stubStore) SoftRevokeAccessGrant(userID, toolID uuid.UUID) error {
	delete(s.grants, toolID)
	return nil
}

func (s *stubStore) FindAccessGrant(userID, toolID uuid.UUID) (*models.UserToolAccess, error) {
	g, ok := s.grants[toolID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return g, nil
}

func (s *stubStore) ListAccessGrantsForUser(userID uuid.UUID) ([]models.UserToolAccess, error) {
	var out []models.UserToolAccess
	for _, g := range s.grants {
		out = append(out, *g)
	}
	return out, nil
}

func (s *stubStore) CountNonRevokedGrantsForUser(userID uuid.UUID) (int64, error) {
	return int64(len(s.grants)), nil
}

func (s *stubStore) ListUsers(query string) ([]store.AdminUserRow, error) {
	return nil, nil
}

var errStub = errors.New("write rejected")

package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toolhub/toolhub-backend/internal/services"
	"github.com/toolhub/toolhub-backend/internal/store"
)

func TestUnlockLink(t *testing.T) {
	assert.Equal(t, "https://tools.example.com/unlock/calculator",
		services.UnlockLink("https://tools.example.com", "calculator"))
	assert.Equal(t, "https://tools.example.com/unlock/calculator",
		services.UnlockLink("https://tools.example.com/", "calculator"),
		"trailing slash on the origin is tolerated")
}

func TestUnlockLinksCoverActiveToolsOnly(t *testing.T) {
	st := newMemStore()
	st.addTool("calculator", true)
	st.addTool("legacy-tool", false)
	svc := services.NewAdminService(st, "https://tools.example.com")

	links, err := svc.UnlockLinks()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "calculator", links[0].Slug)
	assert.Equal(t, "https://tools.example.com/unlock/calculator", links[0].URL)
}

func TestListUsersTrimsQuery(t *testing.T) {
	st := newMemStore()
	st.users = []store.AdminUserRow{
		{Email: "ada@example.com", Name: "Ada", ToolCount: 2},
		{Email: "grace@example.com", Name: "Grace", ToolCount: 0},
	}
	svc := services.NewAdminService(st, "https://tools.example.com")

	rows, err := svc.ListUsers("  ada ")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ada@example.com", rows[0].Email)

	rows, err = svc.ListUsers("   ")
	require.NoError(t, err)
	assert.Len(t, rows, 2, "blank query lists everyone")
}

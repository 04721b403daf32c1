package services

import (
	"strings"

	"github.com/toolhub/toolhub-backend/internal/store"
)

// UnlockLinkEntry pairs a tool with its shareable unlock URL. The link
// itself has no access-control effect; visiting it is what triggers the
// unlock flow.
type UnlockLinkEntry struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AdminService aggregates operator views. It is not a source of truth;
// every mutation goes through AccessService.
type AdminService struct {
	store   store.Store
	baseURL string
}

func NewAdminService(st store.Store, baseURL string) *AdminService {
	return &AdminService{store: st, baseURL: baseURL}
}

// ListUsers returns all users with their non-revoked grant counts,
// optionally filtered by a case-insensitive substring over email and name.
func (s *AdminService) ListUsers(query string) ([]store.AdminUserRow, error) {
	return s.store.ListUsers(strings.TrimSpace(query))
}

// UnlockLinks derives the shareable unlock URL for every active tool.
func (s *AdminService) UnlockLinks() ([]UnlockLinkEntry, error) {
	tools, err := s.store.ListActiveTools()
	if err != nil {
		return nil, err
	}
	links := make([]UnlockLinkEntry, 0, len(tools))
	for _, t := range tools {
		links = append(links, UnlockLinkEntry{
			Slug: t.Slug,
			Name: t.Name,
			URL:  UnlockLink(s.baseURL, t.Slug),
		})
	}
	return links, nil
}

// UnlockLink builds {origin}/unlock/{slug}.
func UnlockLink(baseURL, slug string) string {
	return strings.TrimRight(baseURL, "/") + "/unlock/" + slug
}

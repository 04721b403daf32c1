package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/toolhub/toolhub-backend/internal/config"
	"github.com/toolhub/toolhub-backend/internal/handlers"
	"github.com/toolhub/toolhub-backend/internal/middleware"
	"github.com/toolhub/toolhub-backend/internal/services"
	"github.com/toolhub/toolhub-backend/internal/store"
	"github.com/toolhub/toolhub-backend/internal/tools"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	st store.Store,
	accessService *services.AccessService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	toolHandler *handlers.ToolHandler,
	unlockHandler *handlers.UnlockHandler,
	adminHandler *handlers.AdminHandler,
	plugins []tools.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - applied per route so public
	// routes stay untouched
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Catalog, tool gate, and the unlock flow
	api.Get("/tools", middleware.JWTProtected(cfg), toolHandler.ListCatalog)
	api.Get("/tools/:slug", middleware.JWTProtected(cfg), toolHandler.Get)
	api.Get("/me/tools", middleware.JWTProtected(cfg), toolHandler.ListMine)
	api.Get("/unlock/:slug", middleware.JWTProtected(cfg), unlockHandler.Unlock)

	// Admin surface (JWT + server-side role re-check on every call)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id/tools", adminHandler.ListUserTools)
	admin.Post("/users/:id/tools/:toolID/grant", adminHandler.GrantAccess)
	admin.Post("/users/:id/tools/:toolID/revoke", adminHandler.RevokeAccess)
	admin.Get("/unlock-links", adminHandler.ListUnlockLinks)

	// Tool plugin routes, each group behind the access gate for its slug
	protected := api.Group("/t", middleware.JWTProtected(cfg))
	for _, p := range plugins {
		slug := p.Descriptor().Slug
		group := protected.Group("/"+slug, middleware.RequireToolAccess(st, accessService, slug))
		p.RegisterRoutes(group, db)
	}
}

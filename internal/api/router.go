package api

import (
	"io/fs"
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Fantasim/site/internal/api/handlers"
	"github.com/Fantasim/site/internal/api/middleware"
	"github.com/Fantasim/site/internal/config"
	"github.com/Fantasim/site/internal/layout"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewRouter creates and configures the Chi router with all middleware and routes.
// Any request no route matches is answered by the not-found page.
func NewRouter(cfg *config.Config, site *layout.Site, staticFS fs.FS) chi.Router {
	r := chi.NewRouter()

	// Middleware stack (order matters)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	r.Use(chimw.GetHead)

	slog.Info("router initialized",
		"middleware", []string{"requestLogging", "securityHeaders", "rateLimit", "getHead"},
	)

	notFound := handlers.NotFoundHandler(site)
	r.NotFound(notFound)
	r.MethodNotAllowed(handlers.MethodNotAllowedHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.HealthHandler(site.Config().Title, Version))
	})

	r.Get(config.StaticPrefix+"*", handlers.StaticHandler(staticFS, notFound))
	r.Get("/", handlers.HomeHandler(site, site.Config()))

	return r
}

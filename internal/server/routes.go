package server

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/thepitchdeck/portal/internal/handlers"
	"github.com/thepitchdeck/portal/internal/middleware"
	"github.com/thepitchdeck/portal/web/src/templates/pages"
	"github.com/thepitchdeck/portal/web/src/templates/partials"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	cfg := s.deps.Config
	competitionsHandler := handlers.NewCompetitionsHandler(s.deps.Catalog, cfg.FavouritesToggle)
	dashboardHandler := handlers.NewDashboardHandler(s.deps.Backend, s.deps.Reporter)
	applyHandler := handlers.NewApplyHandler(s.deps.Applications)
	rateLimiter := middleware.RateLimiter(cfg.RateLimit)

	s.E.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/competitions")
	})

	s.E.GET("/competitions", competitionsHandler.PageGet)
	s.E.GET(partials.ResultsPath, competitionsHandler.ResultsGet)

	s.E.GET(pages.ApplyPath, applyHandler.ApplyGet)
	s.E.POST(pages.ApplyPath, applyHandler.ApplyPost, rateLimiter)

	// Static fragment routes take precedence over the :role parameter.
	s.E.GET(partials.SessionPath, dashboardHandler.SessionGet)
	s.E.GET(partials.SidebarPath, dashboardHandler.SidebarGet)
	s.E.POST(partials.LogoutPath, dashboardHandler.LogoutPost)
	s.E.GET("/dashboard/:role", dashboardHandler.DashboardGet, middleware.Role)
	s.E.GET("/dashboard/:role/*", dashboardHandler.DashboardGet, middleware.Role)

	s.E.GET("/health", handlers.HealthGet)
	s.E.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: s.deps.Registry}))
}

// Package server assembles the portal's echo instance.
package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"

	"github.com/thepitchdeck/portal/internal/app"
	appmiddleware "github.com/thepitchdeck/portal/internal/middleware"
)

// Server holds the HTTP server and the services its handlers use.
type Server struct {
	E    *echo.Echo
	deps app.Dependencies
}

// New builds the echo instance with the portal's middleware chain. static
// is served under /static; pass afero.NewBasePathFs(afero.NewOsFs(), dir)
// in production and an afero.NewMemMapFs() in tests.
func New(deps app.Dependencies, static afero.Fs) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer

	metrics, err := echoprometheus.MiddlewareConfig{
		Namespace:  "portal",
		Subsystem:  "http",
		Registerer: deps.Registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}.ToMiddleware()
	if err != nil {
		return nil, err
	}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(metrics)

	store := sessions.NewCookieStore([]byte(deps.Config.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", afero.NewIOFS(static))
	setupErrorHandling(e)

	return &Server{E: e, deps: deps}, nil
}

// setupErrorHandling logs unexpected errors with a stack trace before
// echo's default handler answers. HTTP errors raised on purpose are not logged.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thepitchdeck/portal/internal/backend"
	"github.com/thepitchdeck/portal/internal/dashboard"
	"github.com/thepitchdeck/portal/internal/middleware"
	"github.com/thepitchdeck/portal/internal/view"
	"github.com/thepitchdeck/portal/web/src/templates/layouts"
	"github.com/thepitchdeck/portal/web/src/templates/pages"
	"github.com/thepitchdeck/portal/web/src/templates/partials"
)

const (
	headerHXRequest  = "HX-Request"
	headerHXRedirect = "HX-Redirect"
)

// SessionBackend is the part of the backend the dashboard shell talks to.
type SessionBackend interface {
	Me(ctx context.Context, cookies []*http.Cookie) (*backend.User, error)
	Logout(ctx context.Context, cookies []*http.Cookie) ([]*http.Cookie, error)
}

// DashboardHandler serves the dashboard shell and its fragments.
type DashboardHandler struct {
	backend  SessionBackend
	reporter dashboard.Reporter
}

// NewDashboardHandler creates a DashboardHandler. reporter receives the
// failures the shell hides from the viewer.
func NewDashboardHandler(b SessionBackend, reporter dashboard.Reporter) *DashboardHandler {
	return &DashboardHandler{backend: b, reporter: reporter}
}

// DashboardGet renders the shell around a role page (GET /dashboard/:role/*).
// The identity menu resolves afterwards through SessionGet.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	role := middleware.RoleFrom(c)
	nav := dashboard.Navigation(role)
	path := c.Request().URL.Path

	var current *dashboard.NavigationItem
	if i := dashboard.ActiveItem(nav, path); i >= 0 {
		current = &nav[i]
	}

	title := "Dashboard"
	if current != nil {
		title = current.Label
	}
	shell := layouts.Shell{Title: title, Role: role, Path: path, Nav: nav}
	page := layouts.Dashboard(c.Request().Context(), shell, view.GetFlashData(c), pages.DashboardSection(role, current))
	return c.Render(http.StatusOK, "", page)
}

// SessionGet resolves the viewer's identity and renders the identity menu
// (GET /dashboard/session). A failed fetch still renders, with placeholders.
func (h *DashboardHandler) SessionGet(c echo.Context) error {
	ctx := c.Request().Context()
	role, _ := dashboard.ParseRole(c.QueryParam("role"))
	cookies := c.Cookies()

	sess := dashboard.NewSession(dashboard.FetcherFunc(func(ctx context.Context) (*dashboard.Identity, error) {
		u, err := h.backend.Me(ctx, cookies)
		if err != nil || u == nil {
			return nil, err
		}
		return &dashboard.Identity{FirstName: u.FirstName, LastName: u.LastName, Email: u.Email, Avatar: u.Avatar}, nil
	}), h.reporter)
	defer sess.Unmount()

	select {
	case <-sess.Mount(ctx):
	case <-ctx.Done():
		// The page went away; nothing is left to render into.
		return nil
	}

	middleware.FromContext(ctx).Debug("Session resolved", "state", sess.State().String())
	return c.Render(http.StatusOK, "", partials.IdentityMenu(partials.IdentityData{
		Role:     role,
		Identity: sess.Identity(),
	}))
}

// SidebarGet applies a sidebar event and renders the resulting mobile
// sidebar (GET /dashboard/sidebar).
func (h *DashboardHandler) SidebarGet(c echo.Context) error {
	role, _ := dashboard.ParseRole(c.QueryParam("role"))
	path := c.QueryParam("path")
	state := dashboard.ParseSidebarState(c.QueryParam("state")).Next(dashboard.SidebarEvent(c.QueryParam("event")))

	nav := dashboard.Navigation(role)
	return c.Render(http.StatusOK, "", partials.MobileSidebar(partials.SidebarData{
		Role:   role,
		Path:   path,
		State:  state,
		Items:  nav,
		Active: dashboard.ActiveItem(nav, path),
	}))
}

// LogoutPost ends the backend session and sends the browser to the site
// root (POST /dashboard/logout). The redirect happens even when the backend
// call fails; the failure only reaches the diagnostics channel.
func (h *DashboardHandler) LogoutPost(c echo.Context) error {
	var relayed []*http.Cookie
	sess := dashboard.NewSession(nil, h.reporter)
	target := sess.Logout(c.Request().Context(), func(ctx context.Context) error {
		cookies, err := h.backend.Logout(ctx, c.Cookies())
		relayed = cookies
		return err
	})

	for _, ck := range relayed {
		c.SetCookie(ck)
	}
	if c.Request().Header.Get(headerHXRequest) == "true" {
		c.Response().Header().Set(headerHXRedirect, target)
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

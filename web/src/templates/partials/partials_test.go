package partials

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"

	"github.com/thepitchdeck/portal/internal/competitions"
	"github.com/thepitchdeck/portal/internal/dashboard"
	"github.com/thepitchdeck/portal/internal/filters"
)

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestFilterBar(t *testing.T) {
	c := filters.Criteria{SearchTerm: "pitch", Grade: filters.Grade11To12, ShowFavourites: filters.FavouritesOf(true)}

	t.Run("with toggle", func(t *testing.T) {
		out := render(t, FilterBar(FilterBarData{Criteria: c, ToggleEnabled: true}))
		assert.Contains(t, out, `hx-get="/competitions/results"`)
		assert.Contains(t, out, `value="pitch"`)
		assert.Contains(t, out, `<option value="11-12" selected>Grades 11-12</option>`)
		assert.Contains(t, out, "Showing Favourites")
		assert.Contains(t, out, `name="toggle-favourites"`)
		assert.NotContains(t, out, "hx-swap-oob")
	})

	t.Run("one request per edit", func(t *testing.T) {
		out := render(t, FilterBar(FilterBarData{Criteria: c}))
		assert.Contains(t, out, `hx-trigger="input changed delay:250ms from:input[name=search], change from:select[name=grade], change from:select[name=status]"`)
		assert.NotContains(t, out, `hx-trigger="input delay:250ms, change"`)
	})

	t.Run("without toggle", func(t *testing.T) {
		out := render(t, FilterBar(FilterBarData{Criteria: c}))
		assert.NotContains(t, out, "favourites")
	})
}

func TestFavouritesToggle(t *testing.T) {
	out := render(t, FavouritesToggle(false, true))
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Contains(t, out, `aria-pressed="false"`)
	assert.Contains(t, out, "Show Favourites")
}

func TestResults(t *testing.T) {
	t.Run("items", func(t *testing.T) {
		out := render(t, Results(competitions.Result{
			Total: 1,
			Items: []competitions.Competition{{
				ID: "x", Title: "Venture Sprint", Grade: filters.Grade("k-8"), Status: filters.StatusOpen,
				Deadline: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
			}},
		}))
		assert.Contains(t, out, "Venture Sprint")
		assert.Contains(t, out, "k-8", "unknown grades show the raw value")
		assert.Contains(t, out, "Open")
		assert.Contains(t, out, "Deadline Nov 1, 2026")
	})

	t.Run("empty", func(t *testing.T) {
		out := render(t, Results(competitions.Result{Items: []competitions.Competition{}}))
		assert.Contains(t, out, "No competitions match")
	})

	t.Run("unavailable", func(t *testing.T) {
		out := render(t, Results(competitions.Result{Items: []competitions.Competition{}, Unavailable: true}))
		assert.Contains(t, out, "unavailable")
		assert.NotContains(t, out, "No competitions match")
	})
}

func TestMobileSidebar(t *testing.T) {
	data := SidebarData{
		Role:   dashboard.RoleOrganizer,
		Path:   "/dashboard/organizer",
		Items:  dashboard.Navigation(dashboard.RoleOrganizer),
		Active: 0,
	}

	closed := render(t, MobileSidebar(data))
	assert.Equal(t, `<div id="mobile-sidebar" data-state="closed"></div>`, closed)

	data.State = dashboard.SidebarOpen
	open := render(t, MobileSidebar(data))
	assert.Contains(t, open, `data-state="open"`)
	assert.Contains(t, open, "event=backdrop")
	assert.Contains(t, open, "event=dismiss")
	assert.Contains(t, open, "Create Competition")
}

func TestIdentityMenu(t *testing.T) {
	pending := render(t, IdentityMenu(IdentityData{Role: dashboard.RoleAdmin, Pending: true}))
	assert.Contains(t, pending, `hx-trigger="load"`)
	assert.Contains(t, pending, dashboard.PlaceholderAvatar)

	resolved := render(t, IdentityMenu(IdentityData{
		Role:     dashboard.RoleAdmin,
		Identity: &dashboard.Identity{FirstName: "Lin", LastName: "Wu", Email: "lin@example.com", Avatar: "/a.png"},
	}))
	assert.NotContains(t, resolved, "hx-trigger")
	assert.Contains(t, resolved, "Lin Wu")
	assert.Contains(t, resolved, `src="/a.png"`)
	assert.Contains(t, resolved, `action="/dashboard/logout"`)
}

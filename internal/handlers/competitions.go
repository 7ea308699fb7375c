package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thepitchdeck/portal/internal/competitions"
	"github.com/thepitchdeck/portal/internal/filters"
	"github.com/thepitchdeck/portal/internal/view"
	"github.com/thepitchdeck/portal/web/src/templates/layouts"
	"github.com/thepitchdeck/portal/web/src/templates/pages"
	"github.com/thepitchdeck/portal/web/src/templates/partials"
)

// headerTriggerName is sent by htmx with the name of the element that fired the request.
const headerTriggerName = "HX-Trigger-Name"

// CompetitionsHandler serves the catalog page and its filter fragment.
type CompetitionsHandler struct {
	catalog       *competitions.Service
	toggleEnabled bool
}

// NewCompetitionsHandler creates a CompetitionsHandler. toggleEnabled shows
// the favourites-only toggle.
func NewCompetitionsHandler(catalog *competitions.Service, toggleEnabled bool) *CompetitionsHandler {
	return &CompetitionsHandler{catalog: catalog, toggleEnabled: toggleEnabled}
}

// PageGet renders the full listing (GET /competitions). The query string
// seeds the filters so a filtered listing can be linked to.
func (h *CompetitionsHandler) PageGet(c echo.Context) error {
	data := h.list(c)
	page := layouts.Public(c.Request().Context(), "Competitions", view.GetFlashData(c), pages.Competitions(data))
	return c.Render(http.StatusOK, "", page)
}

// ResultsGet answers a filter change (GET /competitions/results).
func (h *CompetitionsHandler) ResultsGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", pages.CompetitionResults(h.list(c)))
}

func (h *CompetitionsHandler) list(c echo.Context) pages.CompetitionsData {
	criteria := h.criteria(c)
	return pages.CompetitionsData{
		Result:        h.catalog.List(c.Request().Context(), c.Cookies(), criteria),
		ToggleEnabled: h.toggleEnabled,
	}
}

// criteria replays the submitted form through a composer: the inputs seed
// it, and a click on the favourites toggle flips the option.
func (h *CompetitionsHandler) criteria(c echo.Context) filters.Criteria {
	var snapshot filters.Criteria
	composer := filters.NewComposer(
		func(cr filters.Criteria) { snapshot = cr },
		filters.WithFavouritesToggle(h.toggleEnabled),
		filters.WithInitial(filters.FromQuery(c.QueryParams(), h.toggleEnabled)),
	)
	if c.Request().Header.Get(headerTriggerName) == partials.ToggleName {
		composer.ToggleFavourites()
	}
	return snapshot
}

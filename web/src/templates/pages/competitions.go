// Package pages holds the content of each routed page, without layout.
package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/competitions"
	"github.com/thepitchdeck/portal/web/src/templates/partials"
)

// CompetitionsData is the listing page model.
type CompetitionsData struct {
	Result        competitions.Result
	ToggleEnabled bool
}

// Competitions is the catalog page: heading, filter bar and results.
func Competitions(data CompetitionsData) cmp.Node {
	return cmp.Group([]cmp.Node{
		g.Div(g.Class("text-center mb-12"),
			g.H1(g.Class("text-4xl font-bold text-gray-900 mb-4"), cmp.Text("Competitions")),
			g.P(g.Class("text-xl text-gray-600"), cmp.Text("Find a competition that fits your team.")),
		),
		partials.FilterBar(partials.FilterBarData{
			Criteria:      data.Result.Criteria,
			ToggleEnabled: data.ToggleEnabled,
		}),
		partials.Results(data.Result),
	})
}

// CompetitionResults is the fragment answering a filter change. The toggle
// is re-rendered out of band so its label tracks the snapshot.
func CompetitionResults(data CompetitionsData) cmp.Node {
	return cmp.Group([]cmp.Node{
		partials.Results(data.Result),
		cmp.If(data.ToggleEnabled, partials.FavouritesToggle(data.Result.Criteria.ShowFavourites.Only(), true)),
	})
}

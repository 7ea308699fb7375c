package partials

import (
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/filters"
)

// Filter fragment endpoint and the elements it swaps.
const (
	ResultsPath   = "/competitions/results"
	ResultsTarget = "#competition-results"
	FiltersForm   = "competition-filters"
	// ToggleName is the trigger name htmx reports for a favourites click.
	ToggleName = "toggle-favourites"
)

// filterTrigger fires once per edit: debounced typing in the search box,
// and change on the two selects only.
const filterTrigger = "input changed delay:250ms from:input[name=" + filters.ParamSearch + "], " +
	"change from:select[name=" + filters.ParamGrade + "], " +
	"change from:select[name=" + filters.ParamStatus + "]"

// FilterBarData drives the filter form.
type FilterBarData struct {
	Criteria      filters.Criteria
	ToggleEnabled bool
}

// FilterBar renders the four filter inputs. Every edit re-requests the
// results fragment with the whole form.
func FilterBar(data FilterBarData) cmp.Node {
	c := data.Criteria
	return g.Form(g.ID(FiltersForm), g.Method("get"), g.Action("/competitions"),
		g.Class("flex flex-col md:flex-row gap-4 mb-8"),
		hx.Get(ResultsPath),
		hx.Target(ResultsTarget),
		hx.Trigger(filterTrigger),
		hx.Sync("this:replace"),
		g.Div(g.Class("relative flex-1"),
			g.Span(g.Class("absolute left-3 top-1/2 -translate-y-1/2 text-gray-400"), svg(searchIcon, "h-4 w-4")),
			g.Input(g.Type("search"), g.Name(filters.ParamSearch), g.Value(c.SearchTerm),
				g.Placeholder("Search competitions..."), g.Class("w-full pl-10 rounded-md border border-gray-300 py-2"),
				cmp.Attr("aria-label", "Search competitions"),
			),
		),
		g.Div(g.Class("flex gap-4"),
			gradeSelect(c.Grade),
			statusSelect(c.Status),
			cmp.If(data.ToggleEnabled, FavouritesToggle(c.ShowFavourites.Only(), false)),
		),
	)
}

func gradeSelect(current filters.Grade) cmp.Node {
	return g.Select(g.Name(filters.ParamGrade), g.Class("w-[180px] rounded-md border border-gray-300 py-2"),
		cmp.Attr("aria-label", filters.GradeUnset.Label()),
		cmp.Map(filters.Grades(), func(opt filters.Grade) cmp.Node {
			return g.Option(g.Value(string(opt)), cmp.If(opt == current, g.Selected()), cmp.Text(opt.Label()))
		}),
	)
}

func statusSelect(current filters.Status) cmp.Node {
	return g.Select(g.Name(filters.ParamStatus), g.Class("w-[180px] rounded-md border border-gray-300 py-2"),
		cmp.Attr("aria-label", filters.StatusUnset.Label()),
		cmp.Map(filters.Statuses(), func(opt filters.Status) cmp.Node {
			return g.Option(g.Value(string(opt)), cmp.If(opt == current, g.Selected()), cmp.Text(opt.Label()))
		}),
	)
}

// FavouritesToggle is the favourites button and the hidden input carrying
// its state. With oob set it replaces the toggle already on the page.
func FavouritesToggle(on bool, oob bool) cmp.Node {
	state, pressed := "off", "false"
	class := "flex items-center gap-2 rounded-md border border-gray-300 px-4 py-2"
	if on {
		state, pressed = "on", "true"
		class = "flex items-center gap-2 rounded-md bg-primary text-white px-4 py-2"
	}
	return g.Span(g.ID("favourites-toggle"),
		cmp.If(oob, hx.SwapOOB("true")),
		g.Input(g.Type("hidden"), g.Name(filters.ParamFavourites), g.Value(state)),
		g.Button(g.Type("button"), g.Name(ToggleName), g.Class(class),
			cmp.Attr("aria-pressed", pressed),
			hx.Get(ResultsPath),
			hx.Include("#"+FiltersForm),
			hx.Target(ResultsTarget),
			svg(starIcon, "h-4 w-4"),
			cmp.Text(filters.FavouritesLabel(on)),
		),
	)
}

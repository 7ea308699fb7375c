package partials

import (
	"fmt"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/competitions"
	"github.com/thepitchdeck/portal/internal/filters"
)

// Results renders the filtered listing. It is both part of the page and the
// body of the results fragment.
func Results(res competitions.Result) cmp.Node {
	return g.Div(g.ID("competition-results"), g.Data("total", fmt.Sprint(res.Total)),
		cmp.If(res.Unavailable,
			g.P(g.Class("rounded-md bg-yellow-50 p-4 text-sm text-yellow-800"), cmp.Attr("role", "status"),
				cmp.Text("Competitions are unavailable right now. Please try again shortly."),
			),
		),
		cmp.If(!res.Unavailable && len(res.Items) == 0,
			g.P(g.Class("text-center text-gray-500 py-12"), cmp.Text("No competitions match your filters.")),
		),
		cmp.If(len(res.Items) > 0,
			g.Ul(g.Class("grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
				cmp.Map(res.Items, competitionCard),
			),
		),
	)
}

func competitionCard(c competitions.Competition) cmp.Node {
	return g.Li(g.Class("rounded-lg border bg-white p-6 shadow-sm"), g.Data("competition", c.ID),
		g.Div(g.Class("flex items-start justify-between"),
			g.H3(g.Class("text-lg font-semibold"), cmp.Text(c.Title)),
			cmp.If(c.Favourite, g.Span(g.Class("text-primary"), cmp.Attr("aria-label", "Favourite"), svg(starIcon, "h-4 w-4"))),
		),
		cmp.If(c.Organizer != "", g.P(g.Class("text-sm text-gray-500"), cmp.Text(c.Organizer))),
		cmp.If(c.Description != "", g.P(g.Class("mt-2 text-sm text-gray-700"), cmp.Text(c.Description))),
		g.Div(g.Class("mt-4 flex flex-wrap gap-2 text-xs"),
			badge(labelOrRaw(c.Grade.Label(), filters.GradeUnset.Label(), string(c.Grade))),
			badge(labelOrRaw(c.Status.Label(), filters.StatusUnset.Label(), string(c.Status))),
			cmp.If(c.Prize != "", badge(c.Prize)),
			cmp.If(!c.Deadline.IsZero(), badge("Deadline "+c.Deadline.Format("Jan 2, 2006"))),
		),
	)
}

func badge(text string) cmp.Node {
	return g.Span(g.Class("rounded-full bg-gray-100 px-2 py-1 text-gray-700"), cmp.Text(text))
}

// labelOrRaw shows the backend's raw value for enum members the portal does
// not know, instead of the generic caption.
func labelOrRaw(label, fallback, raw string) string {
	if label == fallback && raw != "" {
		return raw
	}
	return label
}

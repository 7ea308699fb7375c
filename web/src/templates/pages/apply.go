package pages

import (
	"strconv"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/applications"
	"github.com/thepitchdeck/portal/internal/filters"
)

// ApplyPath is the pitch-deck application route.
const ApplyPath = "/apply/" + applications.PitchDeck

// ApplyData is the application form model. Form holds the values to echo
// back after a failed submission.
type ApplyData struct {
	Form   applications.Form
	Errors applications.FieldErrors
}

// Apply is the pitch-deck application page.
func Apply(data ApplyData) cmp.Node {
	f := data.Form
	teamSize := ""
	if f.TeamSize > 0 {
		teamSize = strconv.Itoa(f.TeamSize)
	}
	return g.Div(g.Class("max-w-3xl mx-auto"),
		g.Div(g.Class("text-center mb-12"),
			g.H1(g.Class("text-4xl font-bold text-gray-900 mb-4"), cmp.Text("Apply to The Pitch Deck Championship")),
			g.P(g.Class("text-xl text-gray-600"),
				cmp.Text("Join our flagship case competition and compete for $15,000 in prizes."),
			),
		),
		g.Form(g.ID("application-form"), g.Method("post"), g.Action(ApplyPath), g.Class("space-y-6 rounded-lg bg-white p-8 shadow"),
			cmp.Attr("novalidate"),
			g.Div(g.Class("grid gap-6 md:grid-cols-2"),
				textField(data.Errors, "first_name", "First Name", "text", f.FirstName),
				textField(data.Errors, "last_name", "Last Name", "text", f.LastName),
			),
			textField(data.Errors, "email", "Email", "email", f.Email),
			textField(data.Errors, "school", "School", "text", f.School),
			field(data.Errors, "grade", "Grade Level",
				g.Select(g.ID("grade"), g.Name("grade"), g.Class("w-full rounded-md border border-gray-300 py-2"),
					g.Option(g.Value(""), cmp.Text("Select grade")),
					cmp.Map(filters.Grades()[1:], func(opt filters.Grade) cmp.Node {
						return g.Option(g.Value(string(opt)), cmp.If(string(opt) == f.Grade, g.Selected()), cmp.Text(opt.Label()))
					}),
				),
			),
			g.Div(g.Class("grid gap-6 md:grid-cols-2"),
				textField(data.Errors, "team_name", "Team Name (optional)", "text", f.TeamName),
				field(data.Errors, "team_size", "Team Size",
					g.Input(g.ID("team_size"), g.Name("team_size"), g.Type("number"), g.Min("1"), g.Max("5"), g.Value(teamSize),
						g.Class("w-full rounded-md border border-gray-300 py-2")),
				),
			),
			field(data.Errors, "pitch_summary", "Pitch Summary",
				g.Textarea(g.ID("pitch_summary"), g.Name("pitch_summary"), g.Rows("6"),
					g.Class("w-full rounded-md border border-gray-300 py-2"),
					cmp.Text(f.PitchSummary),
				),
			),
			g.Button(g.Type("submit"), g.Class("w-full rounded-md bg-primary px-4 py-3 text-white font-semibold"),
				cmp.Text("Submit Application"),
			),
		),
	)
}

func textField(errs applications.FieldErrors, name, label, typ, value string) cmp.Node {
	return field(errs, name, label,
		g.Input(g.ID(name), g.Name(name), g.Type(typ), g.Value(value), g.Class("w-full rounded-md border border-gray-300 py-2")),
	)
}

func field(errs applications.FieldErrors, name, label string, control cmp.Node) cmp.Node {
	msg, invalid := errs[name]
	return g.Div(g.Class("space-y-2"),
		g.Label(g.For(name), g.Class("block text-sm font-medium text-gray-700"), cmp.Text(label)),
		control,
		cmp.If(invalid, g.P(g.Class("text-sm text-red-600"), g.Data("error", name), cmp.Text(msg))),
	)
}

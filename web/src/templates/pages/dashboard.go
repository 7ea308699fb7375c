package pages

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/dashboard"
)

// DashboardSection is the content for a dashboard page. The portal provides
// the chrome; section bodies belong to the backend's views.
func DashboardSection(role dashboard.Role, item *dashboard.NavigationItem) cmp.Node {
	title := "Dashboard"
	if item != nil {
		title = item.Label
	}
	return g.Section(g.Data("role", string(role)),
		g.P(g.Class("text-sm font-medium text-gray-500"),
			cmp.Text(cases.Title(language.English).String(string(role))+" workspace"),
		),
		g.H1(g.Class("text-2xl font-semibold text-gray-900"), cmp.Text(title)),
	)
}

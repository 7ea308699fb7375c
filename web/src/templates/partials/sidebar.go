package partials

import (
	"net/url"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/dashboard"
)

// SidebarPath serves the mobile sidebar fragment.
const SidebarPath = "/dashboard/sidebar"

// SidebarTarget is the element swapped by sidebar events.
const SidebarTarget = "#mobile-sidebar"

// SidebarData is everything the mobile sidebar needs to render one state.
type SidebarData struct {
	Role   dashboard.Role
	Path   string
	State  dashboard.SidebarState
	Items  []dashboard.NavigationItem
	Active int
}

// SidebarURL is the fragment URL that applies event to state.
func SidebarURL(role dashboard.Role, path string, state dashboard.SidebarState, event dashboard.SidebarEvent) string {
	q := url.Values{}
	q.Set("role", string(role))
	q.Set("path", path)
	q.Set("state", string(state))
	q.Set("event", string(event))
	return SidebarPath + "?" + q.Encode()
}

func sidebarEvent(data SidebarData, event dashboard.SidebarEvent) cmp.Node {
	return cmp.Group([]cmp.Node{
		hx.Get(SidebarURL(data.Role, data.Path, data.State, event)),
		hx.Target(SidebarTarget),
		hx.Swap("outerHTML"),
	})
}

// Brand is the logo linking back to the site root.
func Brand() cmp.Node {
	return g.Div(g.Class("flex items-center flex-shrink-0 px-4"),
		NavIcon(dashboard.IconTrophy, "h-8 w-8 text-primary"),
		g.A(g.Href("/"),
			g.Span(g.Class("ml-2 font-bold text-xl gradient-text"), cmp.Text("The Pitch Deck")),
		),
	)
}

// NavList renders the navigation items, highlighting the one at active.
func NavList(items []dashboard.NavigationItem, active int) cmp.Node {
	nodes := make([]cmp.Node, 0, len(items))
	for i, it := range items {
		class := "group flex items-center px-2 py-2 text-sm font-medium rounded-md text-gray-600 hover:bg-gray-50 hover:text-gray-900"
		if i == active {
			class = "group flex items-center px-2 py-2 text-sm font-medium rounded-md bg-gray-100 text-gray-900"
		}
		nodes = append(nodes, g.A(g.Href(it.TargetPath), g.Class(class),
			cmp.If(i == active, cmp.Attr("aria-current", "page")),
			NavIcon(it.Icon, "mr-3 h-5 w-5"),
			cmp.Text(it.Label),
		))
	}
	return g.Nav(g.Class("mt-5 flex-1 px-2 space-y-1"), cmp.Group(nodes))
}

// MobileSidebar renders the narrow-viewport overlay for data.State. A closed
// sidebar is an empty placeholder that the menu button swaps out.
func MobileSidebar(data SidebarData) cmp.Node {
	if !data.State.IsOpen() {
		return g.Div(g.ID("mobile-sidebar"), g.Data("state", string(dashboard.SidebarClosed)))
	}
	return g.Div(g.ID("mobile-sidebar"), g.Data("state", string(dashboard.SidebarOpen)), g.Class("fixed inset-0 z-40 lg:hidden"),
		g.Div(g.Class("fixed inset-0 bg-gray-600 bg-opacity-75"), g.Data("sidebar", "backdrop"),
			sidebarEvent(data, dashboard.EventBackdrop),
		),
		g.Div(g.Class("relative flex-1 flex flex-col max-w-xs w-full bg-white"),
			g.Div(g.Class("absolute top-0 right-0 -mr-12 pt-2"),
				g.Button(g.Type("button"), g.Class("ml-1 flex items-center justify-center h-10 w-10 rounded-full"),
					g.Data("sidebar", "dismiss"), cmp.Attr("aria-label", "Close sidebar"),
					sidebarEvent(data, dashboard.EventDismiss),
					svg(dismissIcon, "h-6 w-6 text-white"),
				),
			),
			g.Div(g.Class("flex-1 h-0 pt-5 pb-4 overflow-y-auto"),
				Brand(),
				NavList(data.Items, data.Active),
			),
		),
	)
}

// MenuButton opens the mobile sidebar.
func MenuButton(role dashboard.Role, path string) cmp.Node {
	return g.Button(g.Type("button"),
		g.Class("px-4 border-r border-gray-200 text-gray-500 lg:hidden"),
		g.Data("sidebar", "menu"), cmp.Attr("aria-label", "Open sidebar"),
		hx.Get(SidebarURL(role, path, dashboard.SidebarClosed, dashboard.EventMenu)),
		hx.Target(SidebarTarget),
		hx.Swap("outerHTML"),
		svg(menuIcon, "h-6 w-6"),
	)
}

// DesktopSidebar is the permanent wide-viewport sidebar. It does not take
// part in the mobile open/close state.
func DesktopSidebar(items []dashboard.NavigationItem, active int) cmp.Node {
	return g.Div(g.Class("hidden lg:fixed lg:inset-y-0 lg:flex lg:w-64 lg:flex-col"),
		g.Div(g.Class("flex flex-1 flex-col min-h-0 bg-white border-r border-gray-200"),
			g.Div(g.Class("flex flex-1 flex-col pt-5 pb-4 overflow-y-auto"),
				Brand(),
				NavList(items, active),
			),
		),
	)
}

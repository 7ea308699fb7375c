package layouts

import (
	"context"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/dashboard"
	"github.com/thepitchdeck/portal/internal/view"
	"github.com/thepitchdeck/portal/web/src/templates/partials"
)

// Shell describes the dashboard chrome around a page.
type Shell struct {
	Title string
	Role  dashboard.Role
	// Path is the current request path, used to highlight the active item.
	Path string
	Nav  []dashboard.NavigationItem
}

// Dashboard renders the dashboard chrome around content. The identity menu
// starts with placeholders and resolves itself once the page has loaded, so
// content never waits on the session fetch.
func Dashboard(ctx context.Context, shell Shell, flash view.FlashData, content cmp.Node) cmp.Node {
	active := dashboard.ActiveItem(shell.Nav, shell.Path)
	return Document(ctx, shell.Title, flash,
		g.Div(g.Class("min-h-screen bg-gray-50"),
			partials.MobileSidebar(partials.SidebarData{
				Role:   shell.Role,
				Path:   shell.Path,
				State:  dashboard.SidebarClosed,
				Items:  shell.Nav,
				Active: active,
			}),
			partials.DesktopSidebar(shell.Nav, active),
			g.Div(g.Class("lg:pl-64 flex flex-col flex-1"),
				g.Div(g.Class("sticky top-0 z-10 flex-shrink-0 flex h-16 bg-white shadow"),
					partials.MenuButton(shell.Role, shell.Path),
					g.Div(g.Class("flex-1 px-4 flex justify-end"),
						g.Div(g.Class("ml-4 flex items-center md:ml-6"),
							partials.IdentityMenu(partials.IdentityData{Role: shell.Role, Pending: true}),
						),
					),
				),
				g.Main(g.Class("flex-1"),
					g.Div(g.Class("py-6"),
						g.Div(g.Class("max-w-7xl mx-auto px-4 sm:px-6 md:px-8"), content),
					),
				),
			),
		),
	)
}

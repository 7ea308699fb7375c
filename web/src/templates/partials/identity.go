package partials

import (
	"net/url"

	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/dashboard"
)

// Identity fragment and logout endpoints.
const (
	SessionPath = "/dashboard/session"
	LogoutPath  = "/dashboard/logout"
)

// IdentityData drives the identity menu. A nil Identity renders placeholders.
type IdentityData struct {
	Role     dashboard.Role
	Identity *dashboard.Identity
	// Pending marks the provisional render that fetches the session once loaded.
	Pending bool
}

// SessionURL is the identity fragment URL for role.
func SessionURL(role dashboard.Role) string {
	return SessionPath + "?" + url.Values{"role": {string(role)}}.Encode()
}

// IdentityMenu renders the avatar and its dropdown. The pending render swaps
// itself for the resolved one in place.
func IdentityMenu(data IdentityData) cmp.Node {
	id := data.Identity
	return g.Div(g.ID("identity-menu"), g.Class("relative"),
		cmp.If(data.Pending, cmp.Group([]cmp.Node{
			hx.Get(SessionURL(data.Role)),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
		})),
		g.Details(g.Class("relative"),
			g.Summary(g.Class("list-none cursor-pointer"),
				g.Span(g.Class("relative flex h-8 w-8 shrink-0 overflow-hidden rounded-full"),
					g.Img(g.Class("aspect-square h-full w-full"), g.Src(id.AvatarURL()), g.Alt("User")),
					g.Span(g.Class("sr-only"), cmp.Text(id.Initial())),
				),
			),
			g.Div(g.Class("absolute right-0 mt-2 w-56 rounded-md bg-white shadow-lg"), cmp.Attr("role", "menu"),
				g.Div(g.Class("px-4 py-3 flex flex-col space-y-1"),
					g.P(g.Class("text-sm font-medium leading-none"), g.Data("identity", "name"), cmp.Text(id.DisplayName())),
					g.P(g.Class("text-xs leading-none text-gray-500"), g.Data("identity", "email"), cmp.Text(id.DisplayEmail())),
				),
				g.Div(g.Class("border-t border-gray-100")),
				g.A(g.Href(data.Role.HomePath()+"/profile"), g.Class("flex items-center px-4 py-2 text-sm"),
					NavIcon(dashboard.IconUser, "mr-2 h-4 w-4"), g.Span(cmp.Text("Profile"))),
				g.A(g.Href(data.Role.HomePath()+"/settings"), g.Class("flex items-center px-4 py-2 text-sm"),
					g.Span(cmp.Text("Settings"))),
				g.Div(g.Class("border-t border-gray-100")),
				g.Form(g.Method("post"), g.Action(LogoutPath),
					hx.Post(LogoutPath),
					g.Button(g.Type("submit"), g.Class("flex w-full items-center px-4 py-2 text-sm"),
						svg(logoutIcon, "mr-2 h-4 w-4"), g.Span(cmp.Text("Log out")),
					),
				),
			),
		),
	)
}

package partials

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/view"
)

// Flash renders queued success and error messages.
func Flash(data view.FlashData) cmp.Node {
	if data.Empty() {
		return cmp.Group(nil)
	}
	return g.Div(g.ID("flash"), g.Class("fixed top-4 right-4 z-50 space-y-2"),
		cmp.Map(data.Success, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded-md bg-green-50 p-4 text-sm text-green-800"), cmp.Attr("role", "status"), cmp.Text(msg))
		}),
		cmp.Map(data.Error, func(msg string) cmp.Node {
			return g.Div(g.Class("rounded-md bg-red-50 p-4 text-sm text-red-800"), cmp.Attr("role", "alert"), cmp.Text(msg))
		}),
	)
}

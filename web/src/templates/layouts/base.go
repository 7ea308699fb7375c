package layouts

import (
	"context"

	cmp "maragu.dev/gomponents"
	// html is aliased rather than dot-imported: it exports Head and Base.
	g "maragu.dev/gomponents/html"

	"github.com/thepitchdeck/portal/internal/view"
	"github.com/thepitchdeck/portal/web/src/templates/partials"
)

// HTMXSource is the htmx build the pages load. It must match head.templ.
const HTMXSource = "https://unpkg.com/htmx.org@2.0.4"

// Document wraps content in the full HTML document.
func Document(ctx context.Context, title string, flash view.FlashData, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(g.Lang("en"),
			view.FromTempl(ctx, DocumentHead(title)),
			g.Body(g.Class("min-h-screen bg-gray-50"),
				partials.Flash(flash),
				content,
			),
		),
	)
}

// Public is the layout of pages outside the dashboard.
func Public(ctx context.Context, title string, flash view.FlashData, content cmp.Node) cmp.Node {
	return Document(ctx, title, flash,
		g.Div(g.Class("pt-20 pb-16 px-4 sm:px-6 lg:px-8"),
			g.Div(g.Class("max-w-7xl mx-auto"), content),
		),
	)
}

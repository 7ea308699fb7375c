package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// TemplNode wraps a templ.Component so it can sit inside a gomponents tree.
type TemplNode struct {
	Ctx       context.Context
	Component templ.Component
}

// Render implements gomponents.Node. gomponents passes no context, so the one
// captured at construction is used.
func (n TemplNode) Render(w io.Writer) error {
	ctx := n.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return n.Component.Render(ctx, w)
}

// FromTempl converts a templ component into a gomponents node rendered with ctx.
func FromTempl(ctx context.Context, component templ.Component) gomponents.Node {
	return TemplNode{Ctx: ctx, Component: component}
}

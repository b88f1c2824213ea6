package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface.
// Pages are built with gomponents and handed to the templ-based layout through it.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component by delegating to the node.
func (a *GomponentToTemplAdapter) Render(_ context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter wraps a templ.Component to satisfy the gomponents.Node interface.
type TemplToGomponentAdapter struct {
	Ctx       context.Context
	Component templ.Component
}

// Render implements gomponents.Node. gomponents does not pass a context, so
// the one captured at construction is used.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents node.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Ctx: ctx, Component: component}
}

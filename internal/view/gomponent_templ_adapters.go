package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// --- GOMPONENTS -> TEMPL ADAPTER ---

// GomponentToTemplAdapter wraps a gomponents.Node to satisfy the templ.Component interface.
// This allows Gomponents content to be rendered inside templ layouts.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements the templ.Component interface by delegating the writing to the
// underlying gomponents.Node.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	return a.Node.Render(w)
}

// AdaptGomponentToTempl converts a gomponents.Node into a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// --- TEMPL -> GOMPONENTS ADAPTER ---

// TemplToGomponentAdapter wraps a templ.Component to satisfy the gomponents.Node interface.
type TemplToGomponentAdapter struct {
	Component templ.Component
	// Ctx is handed to the component; gomponents' Render has no context.
	Ctx context.Context
}

// Render implements the gomponents.Node interface.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents.Node
// rendered with context.Background().
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}

// AdaptTemplToGomponentContext is AdaptTemplToGomponent with an explicit context.
func AdaptTemplToGomponentContext(ctx context.Context, component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component, Ctx: ctx}
}

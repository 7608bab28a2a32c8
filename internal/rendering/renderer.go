package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders templ components and gomponents nodes.
type Renderer interface {
	// RenderComponent renders a component to bytes, for fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a component as the full HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles both component kinds.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode matches gomponents.Node without importing it.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage buffers the component so a render failure can still produce a
// clean 500 instead of a half-written page.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	body, err := tr.RenderComponent(c.Request().Context(), component)
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "render failed", "error", err, "path", c.Path())
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer; the component is passed as data.
func (tr *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/sameboat/internal/rendering"
	"github.com/nfrund/sameboat/internal/view"
	"github.com/nfrund/sameboat/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// csrfToken returns the token set by echo's CSRF middleware, or "".
func csrfToken(c echo.Context) string {
	token, _ := c.Get(echomw.DefaultCSRFConfig.ContextKey).(string)
	return token
}

// renderPage wraps content in the base layout with the pending flashes.
func renderPage(c echo.Context, r rendering.Renderer, title string, content g.Node) error {
	page := layouts.Base(title, view.GetFlashData(c), csrfToken(c), view.AdaptGomponentToTempl(content))
	return r.RenderPage(c, http.StatusOK, page)
}

// renderFragment writes a partial for htmx to swap in.
func renderFragment(c echo.Context, r rendering.Renderer, content g.Node) error {
	return r.RenderPage(c, http.StatusOK, content)
}

package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/middleware"
	"github.com/nfrund/sameboat/internal/rendering"
	"github.com/nfrund/sameboat/web/src/templates/pages"
)

// DashboardHandler handles requests for the user dashboard.
type DashboardHandler struct {
	renderer rendering.Renderer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(renderer rendering.Renderer) *DashboardHandler {
	return &DashboardHandler{renderer: renderer}
}

// DashboardGet shows the dashboard. RequireAuth has placed the user in the
// context.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	user := middleware.CurrentUser(c)
	return renderPage(c, h.renderer, "Dashboard", pages.Dashboard(user.Email, csrfToken(c)))
}

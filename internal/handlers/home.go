package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/rendering"
	"github.com/nfrund/sameboat/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	svc      *auth.Service
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(svc *auth.Service, renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{svc: svc, renderer: renderer}
}

// HomeGet renders the landing page, greeting the user when signed in.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	var email string
	if token := auth.TokenFromRequest(c); token != "" {
		if user, err := h.svc.Authenticate(c.Request().Context(), token); err == nil && user != nil {
			email = user.Email
		}
	}
	return renderPage(c, h.renderer, "Home", pages.Home(email))
}

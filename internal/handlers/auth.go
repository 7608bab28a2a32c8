package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/middleware"
	"github.com/nfrund/sameboat/internal/navigation"
	"github.com/nfrund/sameboat/internal/registration"
	"github.com/nfrund/sameboat/internal/rendering"
	"github.com/nfrund/sameboat/internal/view"
	"github.com/nfrund/sameboat/internal/websession"
	"github.com/nfrund/sameboat/web/src/templates/pages"
)

const sessionKeyLoginEmail = "login_email"

// Messages flashed by the sign-in flow.
const (
	MsgLoggedIn          = "Logged in successfully!"
	MsgLoggedOut         = "You have been logged out."
	MsgMissingCredential = "Email and password are required."
)

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	svc      *auth.Service
	renderer rendering.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *auth.Service, renderer rendering.Renderer) *AuthHandler {
	return &AuthHandler{svc: svc, renderer: renderer}
}

// LoginGet renders the login page. A pending service error is shown once.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	client := auth.ClientFor(c, h.svc)
	props := pages.LoginProps{
		Email:     websession.GetString(c, sessionKeyLoginEmail),
		Error:     client.ErrorMessage(),
		CSRFToken: csrfToken(c),
	}
	client.ClearError()
	websession.SetString(c, sessionKeyLoginEmail, "")

	return renderPage(c, h.renderer, "Login", pages.Login(props))
}

// LoginPost signs the visitor in and returns them to the remembered page,
// using the same rule as registration.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	client := auth.ClientFor(c, h.svc)
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, MsgMissingCredential)
		return h.backToLogin(c, form.Email)
	}

	if !client.Login(c.Request().Context(), form.Email, form.Password) {
		middleware.FromContext(c.Request().Context()).Info("Sign-in rejected", "email", form.Email)
		return h.backToLogin(c, form.Email)
	}

	nav := navigation.New(c)
	nav.Navigate(registration.RedirectTarget(nav.Location()), registration.NavigateOptions{Replace: true})
	view.SetFlashSuccess(c, MsgLoggedIn)
	return nav.Commit()
}

func (h *AuthHandler) backToLogin(c echo.Context, email string) error {
	websession.SetString(c, sessionKeyLoginEmail, email)
	return c.Redirect(http.StatusSeeOther, registration.LoginPath)
}

// Logout expires the authentication cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	auth.SetAuthCookie(c, "")
	view.SetFlashSuccess(c, MsgLoggedOut)
	return c.Redirect(http.StatusSeeOther, registration.LoginPath)
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/navigation"
	"github.com/nfrund/sameboat/internal/registration"
	"github.com/nfrund/sameboat/internal/rendering"
	"github.com/nfrund/sameboat/internal/view"
	"github.com/nfrund/sameboat/internal/view/components"
	"github.com/nfrund/sameboat/internal/websession"
	"github.com/nfrund/sameboat/web/src/templates/pages"
)

// Session keys carrying the form across a redirect after a failed plain
// form post.
const (
	sessionKeyRegisterEmail = "register_email"
	sessionKeyRegisterError = "register_error"
)

// MsgAccountCreated is flashed after a successful registration.
const MsgAccountCreated = "Account created successfully!"

// RegisterHandler serves the registration view over HTTP.
type RegisterHandler struct {
	svc      *auth.Service
	renderer rendering.Renderer
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(svc *auth.Service, renderer rendering.Renderer) *RegisterHandler {
	return &RegisterHandler{svc: svc, renderer: renderer}
}

func (h *RegisterHandler) newView(c echo.Context) (*registration.View, *navigation.Navigator) {
	nav := navigation.New(c)
	return registration.New(auth.ClientFor(c, h.svc), nav), nav
}

// RegisterGet renders the form, restoring what a failed form post left in
// the session. The carried-over values are consumed.
func (h *RegisterHandler) RegisterGet(c echo.Context) error {
	v, _ := h.newView(c)

	email := websession.GetString(c, sessionKeyRegisterEmail)
	clientError := websession.GetString(c, sessionKeyRegisterError)
	if email != "" || clientError != "" {
		websession.SetStrings(c, map[string]string{
			sessionKeyRegisterEmail: "",
			sessionKeyRegisterError: "",
		})
	}
	v.Restore(email, "", clientError)

	return renderPage(c, h.renderer, "Register", pages.Register(v, csrfToken(c)))
}

// RegisterPost submits the form. Success navigates away; failure answers
// htmx with the alert slot, or redirects back to the form for a plain post.
func (h *RegisterHandler) RegisterPost(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	v, nav := h.newView(c)
	v.Restore(form.Email, form.Password, "")

	if v.Submit(c.Request().Context()) {
		websession.SetStrings(c, map[string]string{
			sessionKeyRegisterEmail: "",
			sessionKeyRegisterError: "",
		})
		view.SetFlashSuccess(c, MsgAccountCreated)
		return nav.Commit()
	}

	// htmx keeps the inputs as typed; only the alert is replaced.
	if navigation.IsHTMX(c) {
		return renderFragment(c, h.renderer, components.AlertSlot(components.AlertError, v.DisplayError()))
	}

	websession.SetStrings(c, map[string]string{
		sessionKeyRegisterEmail: v.Email(),
		sessionKeyRegisterError: v.ClientError(),
	})
	return c.Redirect(http.StatusSeeOther, pages.RegisterPath)
}

// ClearErrors handles focus and input on a field: both error sources are
// cleared and an empty alert slot is returned for htmx to swap in.
func (h *RegisterHandler) ClearErrors(c echo.Context) error {
	v, _ := h.newView(c)
	v.Restore("", "", websession.GetString(c, sessionKeyRegisterError))

	v.Focus(registration.Field(c.Request().Header.Get("HX-Trigger-Name")))
	websession.SetString(c, sessionKeyRegisterError, v.ClientError())

	return renderFragment(c, h.renderer, components.AlertSlot(components.AlertError, v.DisplayError()))
}

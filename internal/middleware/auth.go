package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/domain"
	"github.com/nfrund/sameboat/internal/navigation"
	"github.com/nfrund/sameboat/internal/registration"
)

const UserContextKey = "user"

// RequireAuth protects routes that need a signed-in user. Anonymous visitors
// are sent to the login page and the page they asked for is remembered, so
// signing in or up can bring them back.
func RequireAuth(svc *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.TokenFromRequest(c)
			if token == "" {
				return toLogin(c)
			}

			user, err := svc.Authenticate(c.Request().Context(), token)
			if err != nil || user == nil {
				FromContext(c.Request().Context()).Debug("Rejected session token", "error", err)
				// Drop the stale cookie.
				auth.SetAuthCookie(c, "")
				return toLogin(c)
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user placed in the context by RequireAuth, or nil.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}

func toLogin(c echo.Context) error {
	navigation.Remember(c, c.Request().URL.RequestURI())
	return c.Redirect(http.StatusSeeOther, registration.LoginPath)
}

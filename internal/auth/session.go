package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/websession"
)

const (
	// TokenCookie holds the session token issued at sign-up or sign-in.
	TokenCookie = "auth_token"

	sessionKeyError = "auth_error"
)

// sessionSlot keeps the error slot in the visitor's cookie session so the
// message survives a redirect.
type sessionSlot struct {
	c echo.Context
}

// SessionSlot returns an ErrorSlot backed by the request's cookie session.
func SessionSlot(c echo.Context) ErrorSlot {
	return sessionSlot{c: c}
}

func (s sessionSlot) Load() string {
	return websession.GetString(s.c, sessionKeyError)
}

func (s sessionSlot) Store(message string) {
	websession.SetString(s.c, sessionKeyError, message)
}

// ClientFor builds the Client for one request: errors go to the cookie
// session and issued tokens to the auth cookie.
func ClientFor(c echo.Context, svc *Service) *Client {
	return NewClient(svc, SessionSlot(c), func(token string) {
		SetAuthCookie(c, token)
	})
}

// TokenFromRequest returns the session token sent by the browser, or "".
func TokenFromRequest(c echo.Context) string {
	cookie, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetAuthCookie sets the authentication cookie. An empty token expires it.
func SetAuthCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = TokenCookie
	cookie.Value = token
	cookie.Path = "/"
	if token == "" {
		cookie.MaxAge = -1
	} else {
		cookie.Expires = time.Now().UTC().Add(24 * time.Hour)
	}
	// HttpOnly keeps the token away from page scripts.
	cookie.HttpOnly = true
	cookie.Secure = c.Request().TLS != nil
	cookie.SameSite = http.SameSiteLaxMode
	c.SetCookie(cookie)
}

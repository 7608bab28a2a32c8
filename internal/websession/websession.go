// Package websession wraps the application's cookie session: a small bag of
// string values that survives between requests of one browser.
package websession

import (
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// Name is the cookie session used for application state.
const Name = "sameboat-session"

// NewStore returns the cookie store used by the session middleware.
func NewStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
	}
	return store
}

// GetString returns the string stored under key, or "".
func GetString(c echo.Context, key string) string {
	sess, err := session.Get(Name, c)
	if err != nil {
		return ""
	}
	v, _ := sess.Values[key].(string)
	return v
}

// SetStrings stores every pair in values and saves the session once. An empty
// value deletes its key.
func SetStrings(c echo.Context, values map[string]string) {
	sess, err := session.Get(Name, c)
	if err != nil {
		slog.Warn("Failed to load session", "error", err)
		return
	}
	changed := false
	for key, value := range values {
		old, had := sess.Values[key]
		if value == "" {
			if had {
				delete(sess.Values, key)
				changed = true
			}
			continue
		}
		if old != value {
			sess.Values[key] = value
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

// SetString stores a single value; an empty value deletes the key.
func SetString(c echo.Context, key, value string) {
	SetStrings(c, map[string]string{key: value})
}

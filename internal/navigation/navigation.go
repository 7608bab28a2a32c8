// Package navigation implements the registration view's navigation
// collaborator on top of echo and the cookie session.
package navigation

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/registration"
	"github.com/nfrund/sameboat/internal/websession"
)

const (
	sessionKeyFrom = "nav_from"

	// HeaderNavigate carries the target of a navigation answered to an htmx
	// request; HeaderNavigateReplace marks it as a history replacement.
	HeaderNavigate        = "X-Navigate"
	HeaderNavigateReplace = "X-Navigate-Replace"
)

// Navigator records the navigation decision of one request and turns it into
// an HTTP response on Commit.
type Navigator struct {
	c        echo.Context
	target   string
	opts     registration.NavigateOptions
	navigate bool
}

var _ registration.Navigator = (*Navigator)(nil)

// New returns a Navigator for the request.
func New(c echo.Context) *Navigator {
	return &Navigator{c: c}
}

// Location exposes the remembered pre-login page as location state.
func (n *Navigator) Location() registration.Location {
	from := websession.GetString(n.c, sessionKeyFrom)
	if from == "" {
		return registration.Location{}
	}
	return registration.Location{
		State: &registration.LocationState{From: &registration.From{Pathname: from}},
	}
}

// Navigate records the target. The remembered page is consumed.
func (n *Navigator) Navigate(path string, opts registration.NavigateOptions) {
	n.target = path
	n.opts = opts
	n.navigate = true
	websession.SetString(n.c, sessionKeyFrom, "")
}

// Navigated reports whether Navigate was called.
func (n *Navigator) Navigated() bool {
	return n.navigate
}

// Target returns the recorded target path.
func (n *Navigator) Target() string {
	return n.target
}

// Commit writes the navigation response. htmx requests get a 204 carrying the
// target in headers, which the page script applies with location.replace or
// location.assign; plain form posts get a 303 See Other.
func (n *Navigator) Commit() error {
	if IsHTMX(n.c) {
		h := n.c.Response().Header()
		h.Set(HeaderNavigate, n.target)
		if n.opts.Replace {
			h.Set(HeaderNavigateReplace, "true")
		}
		return n.c.NoContent(http.StatusNoContent)
	}
	return n.c.Redirect(http.StatusSeeOther, n.target)
}

// Remember stores path as the page to return to after signing in or up.
// Only local absolute paths are kept.
func Remember(c echo.Context, path string) {
	if !isLocalPath(path) {
		return
	}
	websession.SetString(c, sessionKeyFrom, path)
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

func isLocalPath(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//") && !strings.Contains(path, "\\")
}

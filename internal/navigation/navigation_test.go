package navigation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/registration"
	"github.com/nfrund/sameboat/internal/websession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(websession.NewStore("a-very-secret-key-for-testing-!", false)))
	return e
}

func TestRememberAndLocation(t *testing.T) {
	e := newEcho()
	e.GET("/remember", func(c echo.Context) error {
		Remember(c, c.QueryParam("p"))
		return c.NoContent(http.StatusOK)
	})
	e.GET("/where", func(c echo.Context) error {
		return c.String(http.StatusOK, New(c).Location().FromPathname())
	})

	tests := []struct {
		path string
		want string
	}{
		{"/dashboard", "/dashboard"},
		{"//evil.example", ""},
		{"https://evil.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/remember?p="+tt.path, nil))

			req := httptest.NewRequest(http.MethodGet, "/where", nil)
			for _, ck := range rec.Result().Cookies() {
				req.AddCookie(ck)
			}
			rec = httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestCommit(t *testing.T) {
	e := newEcho()
	e.POST("/go", func(c echo.Context) error {
		nav := New(c)
		nav.Navigate("/dashboard", registration.NavigateOptions{Replace: true})
		require.True(t, nav.Navigated())
		return nav.Commit()
	})

	t.Run("plain form post redirects", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/go", nil))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	})

	t.Run("htmx request gets navigation headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/go", nil)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "/dashboard", rec.Header().Get(HeaderNavigate))
		assert.Equal(t, "true", rec.Header().Get(HeaderNavigateReplace))
	})
}

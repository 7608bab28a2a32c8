package websession

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringsRoundTripThroughCookie(t *testing.T) {
	e := echo.New()
	e.Use(session.Middleware(NewStore("a-very-secret-key-for-testing-!", false)))
	e.GET("/set", func(c echo.Context) error {
		SetStrings(c, map[string]string{"a": "1", "b": "2"})
		return c.NoContent(http.StatusOK)
	})
	e.GET("/clear", func(c echo.Context) error {
		SetString(c, "a", "")
		return c.NoContent(http.StatusOK)
	})
	e.GET("/get", func(c echo.Context) error {
		return c.String(http.StatusOK, GetString(c, "a")+","+GetString(c, "b"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "1,2", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/clear", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	cookies = rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/get", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, ",2", rec.Body.String())
}

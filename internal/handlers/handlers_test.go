package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/handlers"
	"github.com/nfrund/sameboat/internal/middleware"
	"github.com/nfrund/sameboat/internal/rendering"
	"github.com/nfrund/sameboat/internal/storage"
	"github.com/nfrund/sameboat/internal/websession"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// testApp wires the handlers to an in-memory user store.
type testApp struct {
	e   *echo.Echo
	svc *auth.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store, err := storage.NewFileUserStore(afero.NewMemMapFs(), "users.json", storage.WithHashCost(bcrypt.MinCost))
	require.NoError(t, err)
	svc := auth.NewService(store, nil)
	renderer := rendering.NewUniversalRenderer()

	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(websession.NewStore(testSessionSecret, false)))

	reg := handlers.NewRegisterHandler(svc, renderer)
	authH := handlers.NewAuthHandler(svc, renderer)
	e.GET("/", handlers.NewHomeHandler(svc, renderer).HomeGet)
	e.GET("/register", reg.RegisterGet)
	e.POST("/register", reg.RegisterPost)
	e.POST("/register/clear-errors", reg.ClearErrors)
	e.GET("/login", authH.LoginGet)
	e.POST("/login", authH.LoginPost)
	e.POST("/logout", authH.Logout)
	e.GET("/dashboard", handlers.NewDashboardHandler(renderer).DashboardGet, middleware.RequireAuth(svc))

	return &testApp{e: e, svc: svc}
}

// browser carries cookies between requests. A response may set the same
// cookie more than once; the last one wins, as in a real browser.
type browser struct {
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) browser() *browser {
	return &browser{app: a, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	b.app.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(b.cookies, ck.Name)
			continue
		}
		b.cookies[ck.Name] = ck
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return b.do(req)
}

func (b *browser) token() string {
	if ck, ok := b.cookies[auth.TokenCookie]; ok {
		return ck.Value
	}
	return ""
}

func creds(email, password string) url.Values {
	return url.Values{"email": {email}, "password": {password}}
}

func (a *testApp) seedUser(t *testing.T, email, password string) {
	t.Helper()
	_, err := a.svc.Register(context.Background(), email, password)
	require.NoError(t, err)
}

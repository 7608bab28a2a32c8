package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/sameboat/internal/auth"
	"github.com/nfrund/sameboat/internal/config"
	"github.com/nfrund/sameboat/internal/handlers"
	appmiddleware "github.com/nfrund/sameboat/internal/middleware"
	"github.com/nfrund/sameboat/internal/rendering"
	"github.com/nfrund/sameboat/internal/websession"
	"github.com/nfrund/sameboat/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	cfg      config.Provider
	auth     *auth.Service
	renderer rendering.Renderer
}

// New creates the echo instance with the middleware chain and routes.
func New(cfg config.Provider, svc *auth.Service) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()

	renderer := rendering.NewUniversalRenderer()
	e.Renderer = renderer
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(session.Middleware(websession.NewStore(cfg.GetSessionSecret(), isSecure(cfg))))
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   isSecure(cfg),
		CookieSameSite: http.SameSiteLaxMode,
	}))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s := &Server{
		E:        e,
		cfg:      cfg,
		auth:     svc,
		renderer: renderer,
	}
	s.RegisterRoutes()
	return s
}

func isSecure(cfg config.Provider) bool {
	return strings.HasPrefix(cfg.GetAppBaseURL(), "https://")
}

// setupErrorHandling logs unexpected errors with a stack trace before
// delegating the response to echo's default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			appmiddleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				slog.String("error", err.Error()),
				slog.String("path", c.Request().URL.Path),
				slog.String("stack_trace", string(debug.Stack())),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

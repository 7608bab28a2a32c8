package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sameboat/internal/handlers"
	"github.com/nfrund/sameboat/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	homeHandler := handlers.NewHomeHandler(s.auth, s.renderer)
	registerHandler := handlers.NewRegisterHandler(s.auth, s.renderer)
	authHandler := handlers.NewAuthHandler(s.auth, s.renderer)
	dashboardHandler := handlers.NewDashboardHandler(s.renderer)
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", homeHandler.HomeGet)

	s.E.GET("/register", registerHandler.RegisterGet)
	s.E.POST("/register", registerHandler.RegisterPost, rateLimiter)
	s.E.POST("/register/clear-errors", registerHandler.ClearErrors)

	s.E.GET("/login", authHandler.LoginGet)
	s.E.POST("/login", authHandler.LoginPost, rateLimiter)
	s.E.POST("/logout", authHandler.Logout)

	s.E.GET("/dashboard", dashboardHandler.DashboardGet, middleware.RequireAuth(s.auth))

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/handlers"
	"github.com/nfrund/sevahub/internal/middleware"
	"github.com/nfrund/sevahub/web"
)

// RegisterRoutes sets up the public routes and boots every module under
// its own prefix.
func (s *Server) RegisterRoutes(ctx context.Context) error {
	rateLimiter := middleware.RateLimiter()

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/login", s.authHandler.LoginGet)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)
	s.E.GET("/logout", s.authHandler.Logout)
	s.E.GET("/health", handlers.HealthGet(s.Deps.Recorder))

	return s.bootModules(ctx)
}

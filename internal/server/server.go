package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/sevahub/internal/app"
	"github.com/nfrund/sevahub/internal/config"
	"github.com/nfrund/sevahub/internal/handlers"
	"github.com/nfrund/sevahub/internal/middleware"
	"github.com/nfrund/sevahub/internal/module"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Injector *do.RootScope
	Deps     app.Dependencies

	modules     []module.Module
	homeHandler *handlers.HomeHandler
	authHandler *handlers.AuthHandler
}

// New creates a new Server instance. fs is where the optional catalog file
// is read from; production passes afero.NewOsFs().
func New(cfg config.Provider, fs afero.Fs) (*Server, error) {
	injector := app.NewInjector(cfg, fs)
	deps, err := app.Resolve(injector)
	if err != nil {
		return nil, fmt.Errorf("resolve dependencies: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger)

	// Configure and use session middleware
	secure := cfg.GetAppEnv() == "production"
	e.Use(echosession.Middleware(session.NewGorillaStore(cfg.GetSessionSecret(), secure)))

	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	return &Server{
		E:           e,
		Cfg:         cfg,
		Injector:    injector,
		Deps:        deps,
		modules:     app.NewModules(deps),
		homeHandler: handlers.NewHomeHandler(deps.Sessions),
		authHandler: handlers.NewAuthHandler(deps.API, deps.Sessions),
	}, nil
}

// setupErrorHandling logs unexpected handler errors with a stack trace.
// echo.HTTPErrors are expected and go straight to the default handler.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			err = echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

// Modules returns the application modules in boot order.
func (s *Server) Modules() []module.Module {
	return s.modules
}

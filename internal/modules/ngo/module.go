package ngo

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/bootstrap"
	"github.com/nfrund/sevahub/internal/catalog"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/middleware"
	"github.com/nfrund/sevahub/internal/module"
	"github.com/nfrund/sevahub/internal/pubsub"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/samber/do/v2"
)

// Dependencies are the services the NGO dashboard needs.
type Dependencies struct {
	Sessions  *session.CookieStore
	Fetcher   bootstrap.Fetcher
	Catalog   catalog.Source
	Publisher pubsub.Publisher
}

// Module serves the NGO dashboard and its list pages under /ngo.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return string(domain.RoleNGO)
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	m.handler = NewHandler(m.deps)
	group.Use(middleware.Guard(m.deps.Sessions, domain.RoleNGO))
	group.GET("/dashboard", m.handler.Dashboard)
	group.GET("/dashboard/profile", m.handler.ProfileCard)
	group.GET("/opportunities", m.handler.Opportunities)
	group.GET("/applicants", m.handler.Applicants)
	return nil
}

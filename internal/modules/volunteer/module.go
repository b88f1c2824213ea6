package volunteer

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

// Dependencies are the services the volunteer dashboard needs.
type Dependencies struct {
	Sessions  *session.CookieStore
	Fetcher   bootstrap.Fetcher
	Catalog   catalog.Source
	Publisher pubsub.Publisher
}

// Module serves the volunteer dashboard under /volunteer.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

func New(deps Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return string(domain.RoleVolunteer)
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	m.handler = NewHandler(m.deps)
	group.Use(middleware.Guard(m.deps.Sessions, domain.RoleVolunteer))
	group.GET("/dashboard", m.handler.Dashboard)
	group.GET("/dashboard/profile", m.handler.ProfileCard)
	return nil
}

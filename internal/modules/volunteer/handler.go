package volunteer

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/bootstrap"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/middleware"
	"github.com/nfrund/sevahub/internal/profile"
	"github.com/nfrund/sevahub/internal/view"
	"github.com/nfrund/sevahub/web/src/templates/layouts"
	"github.com/nfrund/sevahub/web/src/templates/pages"
)

// Handler renders the volunteer dashboard.
type Handler struct {
	deps Dependencies
}

// NewHandler creates a new Handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{deps: deps}
}

// load runs a fresh profile bootstrap for this request. Each request is its
// own view instance; nothing is shared between requests.
func (h *Handler) load(c echo.Context) bootstrap.Outcome[profile.Volunteer] {
	ctx := c.Request().Context()
	task := bootstrap.New(domain.RoleVolunteer, h.deps.Sessions.For(c), h.deps.Fetcher, profile.MapVolunteer,
		bootstrap.WithPublisher(h.deps.Publisher),
		bootstrap.WithLogger(middleware.FromContext(ctx)),
	)
	return task.Run(ctx)
}

// leave handles every outcome other than Ready.
func leave(c echo.Context, out bootstrap.Outcome[profile.Volunteer]) error {
	if out.State == bootstrap.Canceled {
		// The client is gone; there is no one to answer.
		return nil
	}
	return middleware.Redirect(c, out.Redirect())
}

// Dashboard renders the full dashboard page once the profile is loaded.
func (h *Handler) Dashboard(c echo.Context) error {
	out := h.load(c)
	if out.State != bootstrap.Ready {
		return leave(c, out)
	}

	ctx := c.Request().Context()
	applications, err := h.deps.Catalog.Applications(ctx)
	if err != nil {
		return fmt.Errorf("load applications: %w", err)
	}
	recommendations, err := h.deps.Catalog.Recommendations(ctx)
	if err != nil {
		return fmt.Errorf("load recommendations: %w", err)
	}

	pageContent := pages.VolunteerDashboard(pages.VolunteerDashboardData{
		Profile:         *out.View,
		Applications:    applications,
		Recommendations: recommendations,
	})

	finalComponent := layouts.Base("Volunteer Dashboard", view.GetFlashData(c),
		layouts.Nav{Authenticated: true, DashboardPath: domain.RoleVolunteer.DashboardPath()},
		view.AdaptGomponentToTempl(pageContent))
	return c.Render(http.StatusOK, "", finalComponent)
}

// ProfileCard renders only the profile card, for htmx refreshes.
func (h *Handler) ProfileCard(c echo.Context) error {
	out := h.load(c)
	if out.State != bootstrap.Ready {
		return leave(c, out)
	}
	return c.Render(http.StatusOK, "", pages.VolunteerProfileCard(*out.View))
}

package ngo

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/bootstrap"
	"github.com/nfrund/sevahub/internal/catalog"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/middleware"
	"github.com/nfrund/sevahub/internal/profile"
	"github.com/nfrund/sevahub/internal/view"
	"github.com/nfrund/sevahub/web/src/templates/layouts"
	"github.com/nfrund/sevahub/web/src/templates/pages"
	cmp "maragu.dev/gomponents"
)

var nav = layouts.Nav{Authenticated: true, DashboardPath: domain.RoleNGO.DashboardPath()}

// Handler renders the NGO dashboard.
type Handler struct {
	deps Dependencies
}

// NewHandler creates a new Handler.
func NewHandler(deps Dependencies) *Handler {
	return &Handler{deps: deps}
}

func (h *Handler) load(c echo.Context) bootstrap.Outcome[profile.NGO] {
	ctx := c.Request().Context()
	task := bootstrap.New(domain.RoleNGO, h.deps.Sessions.For(c), h.deps.Fetcher, profile.MapNGO,
		bootstrap.WithPublisher(h.deps.Publisher),
		bootstrap.WithLogger(middleware.FromContext(ctx)),
	)
	return task.Run(ctx)
}

func leave(c echo.Context, out bootstrap.Outcome[profile.NGO]) error {
	if out.State == bootstrap.Canceled {
		return nil
	}
	return middleware.Redirect(c, out.Redirect())
}

func (h *Handler) page(c echo.Context, title string, content cmp.Node) error {
	finalComponent := layouts.Base(title, view.GetFlashData(c), nav, view.AdaptGomponentToTempl(content))
	return c.Render(http.StatusOK, "", finalComponent)
}

// Dashboard renders the full dashboard once the organisation profile is loaded.
func (h *Handler) Dashboard(c echo.Context) error {
	out := h.load(c)
	if out.State != bootstrap.Ready {
		return leave(c, out)
	}

	ctx := c.Request().Context()
	posted, err := h.deps.Catalog.PostedOpportunities(ctx)
	if err != nil {
		return fmt.Errorf("load posted opportunities: %w", err)
	}
	applicants, err := h.deps.Catalog.Applicants(ctx)
	if err != nil {
		return fmt.Errorf("load applicants: %w", err)
	}

	return h.page(c, "NGO Dashboard", pages.NGODashboard(pages.NGODashboardData{
		Profile:    *out.View,
		Posted:     posted,
		Applicants: applicants,
		Summary:    catalog.Summarize(posted),
	}))
}

// ProfileCard renders only the profile card, for htmx refreshes.
func (h *Handler) ProfileCard(c echo.Context) error {
	out := h.load(c)
	if out.State != bootstrap.Ready {
		return leave(c, out)
	}
	return c.Render(http.StatusOK, "", pages.NGOProfileCard(*out.View))
}

// Opportunities lists every posted opportunity.
func (h *Handler) Opportunities(c echo.Context) error {
	posted, err := h.deps.Catalog.PostedOpportunities(c.Request().Context())
	if err != nil {
		return fmt.Errorf("load posted opportunities: %w", err)
	}
	return h.page(c, "Opportunities", pages.OpportunityList(posted))
}

// Applicants lists every applicant.
func (h *Handler) Applicants(c echo.Context) error {
	applicants, err := h.deps.Catalog.Applicants(c.Request().Context())
	if err != nil {
		return fmt.Errorf("load applicants: %w", err)
	}
	return h.page(c, "Applicants", pages.ApplicantList(applicants))
}

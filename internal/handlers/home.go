package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/audit"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/nfrund/sevahub/internal/view"
	"github.com/nfrund/sevahub/web/src/templates/layouts"
	"github.com/nfrund/sevahub/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct {
	sessions *session.CookieStore
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(sessions *session.CookieStore) *HomeHandler {
	return &HomeHandler{sessions: sessions}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	sess, _ := h.sessions.Load(c)
	nav := navFor(sess)

	pageContent := pages.Home(nav.Authenticated, nav.DashboardPath)
	finalComponent := layouts.Base("Home", view.GetFlashData(c), nav, view.AdaptGomponentToTempl(pageContent))

	// The 'name' parameter is ignored by our renderer, but the component is passed as 'data'.
	return c.Render(http.StatusOK, "", finalComponent)
}

// HealthGet reports liveness and the bootstrap outcome totals.
func HealthGet(recorder *audit.Recorder) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, NewHealthResponse(recorder))
	}
}

func navFor(sess session.Session) layouts.Nav {
	if !sess.HasToken() {
		return layouts.Nav{}
	}
	return layouts.Nav{Authenticated: true, DashboardPath: sess.Role.DashboardPath()}
}

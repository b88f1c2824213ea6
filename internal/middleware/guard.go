package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/gate"
	"github.com/nfrund/sevahub/internal/session"
)

// SessionContextKey holds the session.Session of an allowed request.
const SessionContextKey = "session"

// Guard protects routes with the session gate. required may be
// domain.RoleNone to accept any signed-in visitor.
func Guard(store *session.CookieStore, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision, sess := gate.Check(store.For(c), required)
			if decision != gate.Allow {
				FromContext(c.Request().Context()).Info("access denied by gate",
					"path", c.Path(),
					"required_role", string(required),
					"decision", decision.String(),
				)
				return Redirect(c, decision.Target())
			}

			c.Set(SessionContextKey, sess)
			return next(c)
		}
	}
}

// Redirect sends the visitor to target. htmx requests get an HX-Redirect
// header so the whole page navigates instead of swapping a fragment.
func Redirect(c echo.Context, target string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", target)
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, target)
}

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/apiclient"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/gate"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/nfrund/sevahub/internal/view"
	"github.com/nfrund/sevahub/web/src/templates/layouts"
	"github.com/nfrund/sevahub/web/src/templates/pages"
)

const (
	flashSessionName = "flash-session"
	flashKeyEmail    = "form_email"
)

// Authenticator exchanges credentials for a session token.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*apiclient.LoginResult, error)
}

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	auth     Authenticator
	sessions *session.CookieStore
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth Authenticator, sessions *session.CookieStore) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// LoginGet renders the login page. It retrieves flash messages and the
// email of a failed attempt so the form can be pre-filled.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	var prefilledEmail string
	if sess, err := echosession.Get(flashSessionName, c); err == nil {
		if flashes := sess.Flashes(flashKeyEmail); len(flashes) > 0 {
			if val, ok := flashes[0].(string); ok {
				prefilledEmail = val
			}
			// Persist the consumed email flash.
			_ = sess.Save(c.Request(), c.Response())
		}
	}

	flashes := view.GetFlashData(c)
	pageContent := pages.Login(pages.LoginData{Email: prefilledEmail})
	finalComponent := layouts.Base("Login", flashes, layouts.Nav{}, view.AdaptGomponentToTempl(pageContent))
	return c.Render(http.StatusOK, "", finalComponent)
}

// LoginPost signs the visitor in through the platform API and sends them to
// their role's dashboard.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		view.SetFlashError(c, "Please enter a valid email and password.")
		return h.backToLogin(c, form.Email)
	}

	result, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, apiclient.ErrInvalidCredentials) {
			slog.Warn("Failed login attempt", "email", form.Email)
			view.SetFlashError(c, "Invalid email or password.")
		} else {
			slog.Error("Login request failed", "error", err, "transient", apiclient.IsTransient(err))
			view.SetFlashError(c, "We could not sign you in right now. Please try again.")
		}
		return h.backToLogin(c, form.Email)
	}

	role, ok := domain.ParseRole(string(result.Role))
	if !ok {
		slog.Warn("Login returned an unknown role", "role", string(result.Role))
	}

	if err := h.sessions.Save(c, session.Session{Token: result.Token, Role: role}); err != nil {
		return err
	}

	view.SetFlashSuccess(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, role.DashboardPath())
}

// Logout clears the session and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Clear(c); err != nil {
		slog.Error("Failed to clear session", "error", err)
	}

	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, gate.LoginPath)
}

// backToLogin keeps the submitted email for the next render of the form.
func (h *AuthHandler) backToLogin(c echo.Context, email string) error {
	if sess, err := echosession.Get(flashSessionName, c); err == nil && email != "" {
		sess.AddFlash(email, flashKeyEmail)
		if err := sess.Save(c.Request(), c.Response()); err != nil {
			slog.Error("Failed to save session", "error", err)
		}
	}
	return c.Redirect(http.StatusSeeOther, gate.LoginPath)
}

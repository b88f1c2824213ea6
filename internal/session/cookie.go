package session

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/domain"
)

const (
	// CookieName is the name of the gorilla session holding the token and role.
	CookieName = "sevahub-session"

	keyToken = "token"
	keyRole  = "role"
)

// ErrNoStore is returned when the echo-contrib session middleware is not installed.
var ErrNoStore = errors.New("session store not configured")

// NewGorillaStore creates the cookie store used by the session middleware.
func NewGorillaStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CookieStore accesses the session cookie of the current echo request.
// It relies on echo-contrib's session.Middleware being installed.
type CookieStore struct {
	name string
}

// NewCookieStore creates a CookieStore for the default cookie name.
func NewCookieStore() *CookieStore {
	return &CookieStore{name: CookieName}
}

// For returns a Provider bound to a single request.
func (s *CookieStore) For(c echo.Context) Provider {
	return ProviderFunc(func() (Session, error) {
		return s.Load(c)
	})
}

// Load reads the session from the request. A cookie that cannot be decoded
// (e.g. signed with a rotated secret) yields an empty Session.
func (s *CookieStore) Load(c echo.Context) (Session, error) {
	sess, err := echosession.Get(s.name, c)
	if sess == nil {
		if err == nil {
			err = ErrNoStore
		}
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if err != nil {
		slog.Debug("discarding unreadable session cookie", "error", err)
		return Session{}, nil
	}

	token, _ := sess.Values[keyToken].(string)
	role, _ := sess.Values[keyRole].(string)
	return Session{Token: token, Role: domain.Role(role)}, nil
}

// Save writes the token and role. Only the login flow calls this.
func (s *CookieStore) Save(c echo.Context, value Session) error {
	sess, err := echosession.Get(s.name, c)
	if sess == nil {
		return fmt.Errorf("save session: %w", err)
	}
	sess.Values[keyToken] = value.Token
	sess.Values[keyRole] = string(value.Role)
	return sess.Save(c.Request(), c.Response())
}

// Clear removes the session cookie. Only the logout flow calls this.
func (s *CookieStore) Clear(c echo.Context) error {
	sess, err := echosession.Get(s.name, c)
	if sess == nil {
		return fmt.Errorf("clear session: %w", err)
	}
	delete(sess.Values, keyToken)
	delete(sess.Values, keyRole)
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

package testutils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/rendering"
	"github.com/nfrund/sevahub/internal/session"
)

// SignInPath seeds a session cookie on echo instances built by NewEcho.
const SignInPath = "/__test/signin"

// NewEcho returns an echo instance with the session middleware and the
// universal renderer installed, as the server configures them.
func NewEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Use(echosession.Middleware(session.NewGorillaStore(TestSessionSecret, false)))

	store := session.NewCookieStore()
	e.GET(SignInPath, func(c echo.Context) error {
		return store.Save(c, session.Session{
			Token: c.QueryParam("token"),
			Role:  domain.Role(c.QueryParam("role")),
		})
	})
	return e
}

// SignIn stores token and role in a fresh session and returns its cookies.
func SignIn(t *testing.T, e *echo.Echo, token string, role domain.Role) []*http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, SignInPath+"?token="+token+"&role="+string(role), nil))
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("sign-in did not set a session cookie")
	}
	return cookies
}

// Get performs a GET with the given cookies. htmx marks it as an htmx request.
func Get(e *echo.Echo, path string, cookies []*http.Cookie, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

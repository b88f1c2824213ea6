package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/sevahub/internal/apiclient"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/handlers"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/nfrund/sevahub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthTest(t *testing.T) (*echo.Echo, *testutils.FakeAPI) {
	t.Helper()

	api := testutils.NewFakeAPI(t)
	api.AddAccount("priya@example.org", "correct horse", "tok-v", domain.RoleVolunteer)
	api.AddAccount("hands@example.org", "battery staple", "tok-n", domain.RoleNGO)

	store := session.NewCookieStore()
	authHandler := handlers.NewAuthHandler(apiclient.New(api.URL, 2*time.Second), store)

	e := testutils.NewEcho(t)
	e.Validator = handlers.NewValidator()
	e.GET("/login", authHandler.LoginGet)
	e.POST("/login", authHandler.LoginPost)
	e.GET("/logout", authHandler.Logout)
	e.GET("/whoami", func(c echo.Context) error {
		sess, err := store.Load(c)
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, sess.Token+"|"+string(sess.Role))
	})
	return e, api
}

func postLogin(e *echo.Echo, email, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginPost(t *testing.T) {
	t.Run("volunteer lands on the volunteer dashboard", func(t *testing.T) {
		e, _ := setupAuthTest(t)

		rec := postLogin(e, "priya@example.org", "correct horse")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/volunteer/dashboard", rec.Header().Get("Location"))

		who := testutils.Get(e, "/whoami", rec.Result().Cookies(), false)
		assert.Equal(t, "tok-v|volunteer", who.Body.String())
	})

	t.Run("ngo lands on the ngo dashboard", func(t *testing.T) {
		e, _ := setupAuthTest(t)

		rec := postLogin(e, "hands@example.org", "battery staple")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/ngo/dashboard", rec.Header().Get("Location"))
	})

	t.Run("wrong password returns to the form with the email kept", func(t *testing.T) {
		e, api := setupAuthTest(t)

		rec := postLogin(e, "priya@example.org", "nope")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Equal(t, 1, api.LoginCalls())

		page := testutils.Get(e, "/login", rec.Result().Cookies(), false)
		require.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Invalid email or password.")
		assert.Contains(t, page.Body.String(), `value="priya@example.org"`)

		who := testutils.Get(e, "/whoami", rec.Result().Cookies(), false)
		assert.Equal(t, "|", who.Body.String(), "no session should be stored")
	})

	t.Run("invalid form never reaches the API", func(t *testing.T) {
		e, api := setupAuthTest(t)

		rec := postLogin(e, "not-an-email", "")

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
		assert.Zero(t, api.LoginCalls())

		page := testutils.Get(e, "/login", rec.Result().Cookies(), false)
		assert.Contains(t, page.Body.String(), "Please enter a valid email and password.")
	})
}

func TestLogout(t *testing.T) {
	e, _ := setupAuthTest(t)
	cookies := testutils.SignIn(t, e, "tok-v", domain.RoleVolunteer)

	rec := testutils.Get(e, "/logout", cookies, false)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			cleared = ck.MaxAge < 0
		}
	}
	assert.True(t, cleared, "session cookie should be expired")
}

package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/nfrund/sevahub/internal/audit"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/handlers"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/nfrund/sevahub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeGet(t *testing.T) {
	e := testutils.NewEcho(t)
	e.GET("/", handlers.NewHomeHandler(session.NewCookieStore()).HomeGet)

	t.Run("anonymous visitor is invited to log in", func(t *testing.T) {
		rec := testutils.Get(e, "/", nil, false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `href="/login"`)
	})

	t.Run("signed-in ngo gets a dashboard link", func(t *testing.T) {
		rec := testutils.Get(e, "/", testutils.SignIn(t, e, "tok-n", domain.RoleNGO), false)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `href="/ngo/dashboard"`)
	})
}

func TestHealthGet(t *testing.T) {
	e := testutils.NewEcho(t)
	e.GET("/health", handlers.HealthGet(audit.NewRecorder(nil)))

	rec := testutils.Get(e, "/health", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Empty(t, body.Outcomes)
}

package apiclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nfrund/sevahub/internal/apiclient"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Me(t *testing.T) {
	api := testutils.NewFakeAPI(t)
	api.AddPrincipal("tok-asha", &domain.Principal{
		ID:        "v1",
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "a@x.org",
		Skills:    []string{"Teaching"},
	})
	client := apiclient.New(api.URL, time.Second)

	t.Run("sends bearer token and decodes the principal", func(t *testing.T) {
		p, err := client.Me(context.Background(), "tok-asha")
		require.NoError(t, err)
		assert.Equal(t, "Asha", p.FirstName)
		assert.Equal(t, "Rao", p.LastName)
		assert.Equal(t, []string{"Teaching"}, p.Skills)
	})

	t.Run("unknown token is unauthenticated", func(t *testing.T) {
		_, err := client.Me(context.Background(), "nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.False(t, apiclient.IsTransient(err))

		var se *apiclient.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusUnauthorized, se.Code)
	})
}

func TestClient_MeFailures(t *testing.T) {
	t.Run("server error is a fetch failure but not unauthenticated", func(t *testing.T) {
		api := testutils.NewFakeAPI(t)
		api.FailMe(http.StatusInternalServerError, `{"message":"boom"}`)

		_, err := apiclient.New(api.URL, time.Second).Me(context.Background(), "tok")
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.False(t, errors.Is(err, domain.ErrUnauthenticated))
	})

	t.Run("undecodable body is a fetch failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		_, err := apiclient.New(srv.URL, time.Second).Me(context.Background(), "tok")
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.False(t, apiclient.IsTransient(err))
	})

	t.Run("success without a profile body is a fetch failure", func(t *testing.T) {
		for _, body := range []string{`null`, `{}`, `{"firstName":""}`} {
			api := testutils.NewFakeAPI(t)
			api.FailMe(http.StatusOK, body)

			p, err := apiclient.New(api.URL, time.Second).Me(context.Background(), "tok")
			assert.Nil(t, p, "body %s", body)
			assert.ErrorIs(t, err, domain.ErrFetchFailed, "body %s", body)
			assert.False(t, errors.Is(err, domain.ErrUnauthenticated))
			assert.False(t, apiclient.IsTransient(err))
		}
	})

	t.Run("unreachable origin is transient", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := apiclient.New(url, time.Second).Me(context.Background(), "tok")
		assert.ErrorIs(t, err, domain.ErrFetchFailed)
		assert.True(t, apiclient.IsTransient(err))
	})
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	api := testutils.NewFakeAPI(t)
	api.AddPrincipal("tok", &domain.Principal{FirstName: "Asha"})

	client := apiclient.New(api.URL+"/", time.Second)
	assert.Equal(t, api.URL, client.BaseURL())

	p, err := client.Me(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "Asha", p.FirstName)
	assert.Equal(t, 1, api.MeCalls())
}

func TestClient_Login(t *testing.T) {
	api := testutils.NewFakeAPI(t)
	api.AddAccount("seva@example.org", "hunter22", "tok-seva", domain.RoleNGO)
	client := apiclient.New(api.URL, time.Second)

	res, err := client.Login(context.Background(), "seva@example.org", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "tok-seva", res.Token)
	assert.Equal(t, domain.RoleNGO, res.Role)

	_, err = client.Login(context.Background(), "seva@example.org", "wrong")
	assert.ErrorIs(t, err, apiclient.ErrInvalidCredentials)
	assert.Equal(t, 2, api.LoginCalls())
}

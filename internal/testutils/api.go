package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nfrund/sevahub/internal/domain"
)

// FakeAPI is an in-process stand-in for the platform REST API.
type FakeAPI struct {
	*httptest.Server

	mu          sync.Mutex
	principals  map[string]*domain.Principal
	credentials map[string]fakeAccount
	meStatus    int
	meBody      string
	meHook      func()

	meCalls    atomic.Int64
	loginCalls atomic.Int64
}

type fakeAccount struct {
	password string
	token    string
	role     domain.Role
}

// NewFakeAPI starts a FakeAPI that is closed when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	api := &FakeAPI{
		principals:  make(map[string]*domain.Principal),
		credentials: make(map[string]fakeAccount),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/me", api.handleMe)
	mux.HandleFunc("POST /api/auth/login", api.handleLogin)
	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)
	return api
}

// AddPrincipal makes token resolve to p.
func (a *FakeAPI) AddPrincipal(token string, p *domain.Principal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.principals[token] = p
}

// AddAccount registers credentials accepted by the login endpoint.
func (a *FakeAPI) AddAccount(email, password, token string, role domain.Role) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.credentials[email] = fakeAccount{password: password, token: token, role: role}
}

// FailMe forces /api/auth/me to answer with status and a raw body.
func (a *FakeAPI) FailMe(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.meStatus = status
	a.meBody = body
}

// OnMe runs hook at the start of every /api/auth/me request.
func (a *FakeAPI) OnMe(hook func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.meHook = hook
}

// MeCalls is the number of /api/auth/me requests received.
func (a *FakeAPI) MeCalls() int { return int(a.meCalls.Load()) }

// LoginCalls is the number of /api/auth/login requests received.
func (a *FakeAPI) LoginCalls() int { return int(a.loginCalls.Load()) }

func (a *FakeAPI) handleMe(w http.ResponseWriter, r *http.Request) {
	a.meCalls.Add(1)

	a.mu.Lock()
	hook, status, body := a.meHook, a.meStatus, a.meBody
	a.mu.Unlock()

	if hook != nil {
		hook()
	}
	if status != 0 {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
		return
	}

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "missing token"})
		return
	}

	a.mu.Lock()
	p, found := a.principals[token]
	a.mu.Unlock()
	if !found {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *FakeAPI) handleLogin(w http.ResponseWriter, r *http.Request) {
	a.loginCalls.Add(1)

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad request"})
		return
	}

	a.mu.Lock()
	acct, found := a.credentials[body.Email]
	a.mu.Unlock()
	if !found || acct.password != body.Password {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "invalid credentials"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": acct.token, "role": string(acct.role)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

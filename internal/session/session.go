// Package session reads and writes the token/role pair that identifies the
// visitor across page loads.
package session

import "github.com/nfrund/sevahub/internal/domain"

// Session is the authenticated identity persisted across page loads.
// An empty Token means no one is signed in.
type Session struct {
	Token string
	Role  domain.Role
}

// HasToken reports whether a bearer token is present.
func (s Session) HasToken() bool {
	return s.Token != ""
}

// Provider supplies the current Session. The gate and the profile bootstrap
// receive a Provider instead of reaching into request or global state.
type Provider interface {
	Session() (Session, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() (Session, error)

func (f ProviderFunc) Session() (Session, error) { return f() }

// Static is a Provider that always returns the same Session.
type Static Session

func (s Static) Session() (Session, error) { return Session(s), nil }

// Package gate decides whether a session may see a protected view.
package gate

import (
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/session"
)

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Decision is the outcome of evaluating a session against a view.
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectToLogin:
		return "redirect_to_login"
	case RedirectToHome:
		return "redirect_to_home"
	default:
		return "unknown"
	}
}

// Target is the redirect location for the decision, empty for Allow.
func (d Decision) Target() string {
	switch d {
	case RedirectToLogin:
		return LoginPath
	case RedirectToHome:
		return HomePath
	default:
		return ""
	}
}

// Evaluate applies the access rules in order:
// no token sends the visitor to login; a required role that differs from
// the stored one sends them home; everything else is allowed.
// domain.RoleNone as required means any signed-in role is accepted.
func Evaluate(s session.Session, required domain.Role) Decision {
	if !s.HasToken() {
		return RedirectToLogin
	}
	if required != domain.RoleNone && s.Role != required {
		return RedirectToHome
	}
	return Allow
}

// Check reads the session from p and evaluates it. A provider error is
// treated as an absent session.
func Check(p session.Provider, required domain.Role) (Decision, session.Session) {
	s, err := p.Session()
	if err != nil {
		return RedirectToLogin, session.Session{}
	}
	return Evaluate(s, required), s
}

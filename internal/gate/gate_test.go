package gate

import (
	"errors"
	"testing"

	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/session"
	"github.com/stretchr/testify/assert"
)

var allRequired = []domain.Role{domain.RoleNone, domain.RoleVolunteer, domain.RoleNGO}
var allStored = []domain.Role{domain.RoleNone, domain.RoleVolunteer, domain.RoleNGO, "admin"}

func TestEvaluate_NoTokenAlwaysGoesToLogin(t *testing.T) {
	for _, stored := range allStored {
		for _, required := range allRequired {
			got := Evaluate(session.Session{Role: stored}, required)
			assert.Equal(t, RedirectToLogin, got, "stored=%q required=%q", stored, required)
		}
	}
}

func TestEvaluate_RoleMismatchGoesHome(t *testing.T) {
	for _, stored := range allStored {
		for _, required := range []domain.Role{domain.RoleVolunteer, domain.RoleNGO} {
			if stored == required {
				continue
			}
			got := Evaluate(session.Session{Token: "t", Role: stored}, required)
			assert.Equal(t, RedirectToHome, got, "stored=%q required=%q", stored, required)
		}
	}
}

func TestEvaluate_Allow(t *testing.T) {
	for _, stored := range allStored {
		got := Evaluate(session.Session{Token: "t", Role: stored}, domain.RoleNone)
		assert.Equal(t, Allow, got, "no requirement, stored=%q", stored)
	}
	assert.Equal(t, Allow, Evaluate(session.Session{Token: "t", Role: domain.RoleVolunteer}, domain.RoleVolunteer))
	assert.Equal(t, Allow, Evaluate(session.Session{Token: "t", Role: domain.RoleNGO}, domain.RoleNGO))
}

func TestEvaluate_Idempotent(t *testing.T) {
	s := session.Session{Token: "t", Role: domain.RoleNGO}
	first := Evaluate(s, domain.RoleVolunteer)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Evaluate(s, domain.RoleVolunteer))
	}
}

func TestDecisionTargets(t *testing.T) {
	assert.Equal(t, "", Allow.Target())
	assert.Equal(t, "/login", RedirectToLogin.Target())
	assert.Equal(t, "/", RedirectToHome.Target())
	assert.Equal(t, "redirect_to_home", RedirectToHome.String())
	assert.Equal(t, "unknown", Decision(42).String())
}

func TestCheck(t *testing.T) {
	d, s := Check(session.Static{Token: "t", Role: domain.RoleVolunteer}, domain.RoleVolunteer)
	assert.Equal(t, Allow, d)
	assert.Equal(t, "t", s.Token)

	failing := session.ProviderFunc(func() (session.Session, error) {
		return session.Session{}, errors.New("store unavailable")
	})
	d, _ = Check(failing, domain.RoleNone)
	assert.Equal(t, RedirectToLogin, d)
}

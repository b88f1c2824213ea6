package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("volunteer")
	assert.True(t, ok)
	assert.Equal(t, RoleVolunteer, r)

	r, ok = ParseRole("ngo")
	assert.True(t, ok)
	assert.Equal(t, RoleNGO, r)

	r, ok = ParseRole("admin")
	assert.False(t, ok)
	assert.Equal(t, RoleNone, r)

	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/volunteer/dashboard", RoleVolunteer.DashboardPath())
	assert.Equal(t, "/ngo/dashboard", RoleNGO.DashboardPath())
	assert.Equal(t, "/", RoleNone.DashboardPath())
}

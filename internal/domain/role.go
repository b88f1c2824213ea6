package domain

// Role tags the kind of principal a session belongs to.
type Role string

const (
	// RoleNone means "no role requirement" when used as a required role.
	RoleNone      Role = ""
	RoleVolunteer Role = "volunteer"
	RoleNGO       Role = "ngo"
)

// ParseRole returns the known Role for s.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleVolunteer, RoleNGO:
		return Role(s), true
	default:
		return RoleNone, false
	}
}

// DashboardPath is the landing page for a role, or "/" for unknown roles.
func (r Role) DashboardPath() string {
	switch r {
	case RoleVolunteer:
		return "/volunteer/dashboard"
	case RoleNGO:
		return "/ngo/dashboard"
	default:
		return "/"
	}
}

func (r Role) String() string { return string(r) }

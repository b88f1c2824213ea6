package bootstrap

import "github.com/nfrund/sevahub/internal/gate"

// State is the lifecycle position of one bootstrap task.
//
//	Idle -> Gating -> {RedirectedToLogin | RedirectedToHome | Fetching}
//	Fetching -> {RedirectedToLogin | Ready | Canceled}
type State int

const (
	Idle State = iota
	Gating
	Fetching
	Ready
	RedirectedToLogin
	RedirectedToHome
	// Canceled means the view went away before the profile was committed;
	// any late result was discarded.
	Canceled
)

var stateNames = map[State]string{
	Idle:              "idle",
	Gating:            "gating",
	Fetching:          "fetching",
	Ready:             "ready",
	RedirectedToLogin: "redirected_to_login",
	RedirectedToHome:  "redirected_to_home",
	Canceled:          "canceled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	switch s {
	case Ready, RedirectedToLogin, RedirectedToHome, Canceled:
		return true
	default:
		return false
	}
}

// Target is where the visitor is sent, empty when there is nowhere to go.
func (s State) Target() string {
	switch s {
	case RedirectedToLogin:
		return gate.LoginPath
	case RedirectedToHome:
		return gate.HomePath
	default:
		return ""
	}
}

package bootstrap

import (
	"time"

	"github.com/nfrund/sevahub/internal/pubsub"
)

// OutcomeEvent is published once for every task that reaches a terminal state.
type OutcomeEvent struct {
	InstanceID string    `json:"instance_id"`
	Role       string    `json:"role"`
	State      string    `json:"state"`
	Cause      string    `json:"cause,omitempty"`
	Transient  bool      `json:"transient,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

// OutcomeTopic carries OutcomeEvent payloads.
var OutcomeTopic = pubsub.NewEvent[OutcomeEvent]("bootstrap.outcome")

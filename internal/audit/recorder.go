// Package audit consumes bootstrap outcome events for observability.
package audit

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nfrund/sevahub/internal/bootstrap"
	"github.com/nfrund/sevahub/internal/pubsub"
)

// Recorder logs every bootstrap outcome and counts them by state.
type Recorder struct {
	logger *slog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// NewRecorder creates a Recorder. A nil logger means slog.Default().
func NewRecorder(logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		logger: logger.With("component", "audit"),
		counts: make(map[string]int),
	}
}

// Start subscribes the recorder to bootstrap outcomes.
func (r *Recorder) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return bootstrap.OutcomeTopic.Subscribe(ctx, sub, r.handle)
}

func (r *Recorder) handle(_ context.Context, ev bootstrap.OutcomeEvent) error {
	r.logger.Info("bootstrap outcome",
		"instance_id", ev.InstanceID,
		"role", ev.Role,
		"state", ev.State,
		"cause", ev.Cause,
		"transient", ev.Transient,
		"duration_ms", ev.DurationMS,
	)

	r.mu.Lock()
	r.counts[ev.State]++
	r.mu.Unlock()
	return nil
}

// Counts returns a copy of the per-state totals.
func (r *Recorder) Counts() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

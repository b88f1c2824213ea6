// Package bootstrap loads the profile a dashboard needs before it can render.
//
// A Task is created for each view instantiation (one dashboard request). It
// checks the session with the gate, fetches the current principal, maps it
// into a view model and commits it. Every failure ends in a redirect to the
// login page; the classified cause stays available for logging.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/sevahub/internal/apiclient"
	"github.com/nfrund/sevahub/internal/domain"
	"github.com/nfrund/sevahub/internal/gate"
	"github.com/nfrund/sevahub/internal/pubsub"
	"github.com/nfrund/sevahub/internal/session"
)

// Fetcher loads the principal that owns a bearer token.
type Fetcher interface {
	Me(ctx context.Context, token string) (*domain.Principal, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, token string) (*domain.Principal, error)

func (f FetcherFunc) Me(ctx context.Context, token string) (*domain.Principal, error) {
	return f(ctx, token)
}

// Mapper turns a raw principal into a view model.
type Mapper[VM any] func(*domain.Principal) VM

// Outcome is the terminal result of a Task. View is non-nil only when
// State is Ready.
type Outcome[VM any] struct {
	InstanceID string
	State      State
	View       *VM
	Err        error
	Duration   time.Duration
}

// Redirect is the location the visitor must be sent to, empty when the view
// can render (or was canceled).
func (o Outcome[VM]) Redirect() string {
	return o.State.Target()
}

// Transient reports whether the failure came from the network rather than
// from the session or the API's answer.
func (o Outcome[VM]) Transient() bool {
	return o.Err != nil && apiclient.IsTransient(o.Err)
}

type options struct {
	mismatchHome bool
	publisher    pubsub.Publisher
	logger       *slog.Logger
}

// Option configures a Task.
type Option func(*options)

// WithRoleMismatchHome follows the gate and sends visitors with the wrong
// role to the home page instead of the login page.
func WithRoleMismatchHome() Option {
	return func(o *options) { o.mismatchHome = true }
}

// WithPublisher publishes an OutcomeEvent when the task finishes.
func WithPublisher(pub pubsub.Publisher) Option {
	return func(o *options) { o.publisher = pub }
}

// WithLogger sets the logger used for outcome logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Task is a one-shot profile load bound to a single view instance.
type Task[VM any] struct {
	id       string
	role     domain.Role
	sessions session.Provider
	fetcher  Fetcher
	mapper   Mapper[VM]
	opts     options

	once    sync.Once
	mu      sync.Mutex
	state   State
	view    *VM
	outcome Outcome[VM]
}

// New creates an Idle task for a view that requires role.
func New[VM any](role domain.Role, sessions session.Provider, fetcher Fetcher, mapper func(*domain.Principal) VM, opts ...Option) *Task[VM] {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Task[VM]{
		id:       uuid.NewString(),
		role:     role,
		sessions: sessions,
		fetcher:  fetcher,
		mapper:   mapper,
		opts:     o,
		state:    Idle,
	}
}

// ID identifies this view instance in logs and events.
func (t *Task[VM]) ID() string { return t.id }

// State returns the current state.
func (t *Task[VM]) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// View returns the committed view model, or nil before Ready.
func (t *Task[VM]) View() *VM {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.view
}

// Run executes the bootstrap sequence once. Later calls return the first
// outcome without fetching again. Canceling ctx before the profile is
// committed discards the in-flight result.
func (t *Task[VM]) Run(ctx context.Context) Outcome[VM] {
	t.once.Do(func() {
		start := time.Now()
		state, view, err := t.run(ctx)

		t.mu.Lock()
		t.state = state
		t.view = view
		t.outcome = Outcome[VM]{
			InstanceID: t.id,
			State:      state,
			View:       view,
			Err:        err,
			Duration:   time.Since(start),
		}
		out := t.outcome
		t.mu.Unlock()

		t.report(ctx, out)
	})

	t.mu.Lock()
	defer t.mu.Unlock()
	return t.outcome
}

func (t *Task[VM]) setState(s State) {
	t.mu.Lock()
	t.state = s
	t.mu.Unlock()
}

func (t *Task[VM]) run(ctx context.Context) (State, *VM, error) {
	t.setState(Gating)

	decision, sess := gate.Check(t.sessions, t.role)
	switch decision {
	case gate.RedirectToLogin:
		return RedirectedToLogin, nil, domain.ErrUnauthenticated
	case gate.RedirectToHome:
		err := fmt.Errorf("%w: role %q, want %q", domain.ErrUnauthorized, sess.Role, t.role)
		if t.opts.mismatchHome {
			return RedirectedToHome, nil, err
		}
		return RedirectedToLogin, nil, err
	}

	if err := ctx.Err(); err != nil {
		return Canceled, nil, err
	}

	t.setState(Fetching)
	principal, err := t.fetcher.Me(ctx, sess.Token)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Canceled, nil, ctxErr
	}
	if err != nil {
		if !errors.Is(err, domain.ErrFetchFailed) {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		return RedirectedToLogin, nil, err
	}
	if principal == nil || principal.FirstName == "" {
		return RedirectedToLogin, nil, fmt.Errorf("%w: empty profile", domain.ErrFetchFailed)
	}

	view := t.mapper(principal)
	return Ready, &view, nil
}

func (t *Task[VM]) report(ctx context.Context, out Outcome[VM]) {
	attrs := []any{
		"instance_id", out.InstanceID,
		"role", string(t.role),
		"state", out.State.String(),
		"duration", out.Duration,
	}
	switch {
	case out.Err == nil:
		t.opts.logger.Debug("profile bootstrap finished", attrs...)
	case out.State == Canceled:
		t.opts.logger.Debug("profile bootstrap canceled", append(attrs, "error", out.Err)...)
	case errors.Is(out.Err, domain.ErrFetchFailed):
		t.opts.logger.Warn("profile bootstrap failed", append(attrs, "error", out.Err, "transient", out.Transient())...)
	default:
		t.opts.logger.Info("profile bootstrap denied", append(attrs, "error", out.Err)...)
	}

	if t.opts.publisher == nil {
		return
	}

	ev := OutcomeEvent{
		InstanceID: out.InstanceID,
		Role:       string(t.role),
		State:      out.State.String(),
		Transient:  out.Transient(),
		DurationMS: out.Duration.Milliseconds(),
		At:         time.Now().UTC(),
	}
	if out.Err != nil {
		ev.Cause = out.Err.Error()
	}
	// The view may already be gone; the event still describes what happened.
	pubCtx := context.WithoutCancel(ctx)
	if err := OutcomeTopic.Publish(pubCtx, t.opts.publisher, ev, map[string]string{"role": string(t.role)}); err != nil {
		t.opts.logger.Error("failed to publish bootstrap outcome", "instance_id", out.InstanceID, "error", err)
	}
}

package audit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/nfrund/sevahub/internal/bootstrap"
	"github.com/nfrund/sevahub/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_CountsOutcomes(t *testing.T) {
	bridge := pubsub.NewWatermillBridge()
	defer bridge.Close()

	var logs bytes.Buffer
	rec := NewRecorder(slog.New(slog.NewTextHandler(&logs, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, rec.Start(ctx, bridge))

	publish := func(state string) {
		require.NoError(t, bootstrap.OutcomeTopic.Publish(ctx, bridge, bootstrap.OutcomeEvent{
			InstanceID: "id-" + state,
			Role:       "volunteer",
			State:      state,
		}, nil))
	}
	publish("ready")
	publish("ready")
	publish("redirected_to_login")

	require.Eventually(t, func() bool {
		c := rec.Counts()
		return c["ready"] == 2 && c["redirected_to_login"] == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.Contains(t, logs.String(), "bootstrap outcome")
	assert.Contains(t, logs.String(), "component=audit")
}

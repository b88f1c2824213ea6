package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingEvent struct {
	Seq int `json:"seq"`
}

func TestWatermillBridge_TypedRoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := NewEvent[pingEvent]("test.ping")
	received := make(chan pingEvent, 1)
	require.NoError(t, ev.Subscribe(ctx, bridge, func(ctx context.Context, p pingEvent) error {
		received <- p
		return nil
	}))

	require.NoError(t, ev.Publish(ctx, bridge, pingEvent{Seq: 7}, map[string]string{"source": "test"}))

	select {
	case got := <-received:
		assert.Equal(t, 7, got.Seq)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestWatermillBridge_MetadataAndTopic(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx := context.Background()
	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.raw", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:    "test.raw",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"role": "ngo"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "test.raw", msg.Topic)
		assert.Equal(t, "hello", string(msg.Payload))
		assert.Equal(t, "ngo", msg.Metadata["role"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatermillBridge_PublishSubscribe(t *testing.T) {
	bridge := NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	err := bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		UserID:   "user123",
		Payload:  []byte(`{"hello":"world"}`),
		Metadata: map[string]string{"request_id": "req-123"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "user123", msg.UserID)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
		assert.Equal(t, "req-123", msg.Metadata["request_id"])
		_, hasTopic := msg.Metadata[metaKeyTopic]
		assert.False(t, hasTopic, "reserved keys are not copied into metadata")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

type greeting struct {
	Name string `json:"name"`
}

func TestEvent_TypedRoundTrip(t *testing.T) {
	bridge := NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[greeting]("greeting.sent")
	got := make(chan greeting, 1)
	require.NoError(t, event.Subscribe(ctx, bridge, func(ctx context.Context, g greeting) error {
		got <- g
		return nil
	}))

	require.NoError(t, event.Publish(ctx, bridge, "u1", greeting{Name: "Ada"}))

	select {
	case g := <-got:
		assert.Equal(t, "Ada", g.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for typed event")
	}
}

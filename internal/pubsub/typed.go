package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to its payload type and provides type-safe
// publishing and subscribing with JSON payloads.
type Event[T any] struct {
	topicName string
}

// NewEvent creates a typed event for the given topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{topicName: name}
}

// Topic returns the topic name.
func (e Event[T]) Topic() string {
	return e.topicName
}

// Publish marshals payload and publishes it on the event's topic.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, userID string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", e.topicName, err)
	}
	return pub.Publish(ctx, Message{
		Topic:   e.topicName,
		UserID:  userID,
		Payload: data,
	})
}

// Subscribe decodes each message on the event's topic into T before calling fn.
func (e Event[T]) Subscribe(ctx context.Context, sub Subscriber, fn func(ctx context.Context, payload T) error) error {
	return sub.Subscribe(ctx, e.topicName, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", e.topicName, err)
		}
		return fn(ctx, payload)
	})
}

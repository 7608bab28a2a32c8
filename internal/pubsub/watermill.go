package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// WatermillBridge implements the Publisher and Subscriber interfaces using watermill's GoChannel.
type WatermillBridge struct {
	pub message.Publisher
	sub message.Subscriber
	// Logger for watermill to use
	logger watermill.LoggerAdapter
}

var (
	_ Publisher  = (*WatermillBridge)(nil)
	_ Subscriber = (*WatermillBridge)(nil)
)

const (
	// Metadata keys used to transfer our Message structure fields through watermill's message.
	metaKeyUserID = "user_id"
	metaKeyTopic  = "topic"
)

// NewWatermillBridge initializes an in-memory Pub/Sub system backed by
// watermill's GoChannel, logging through slog.
func NewWatermillBridge(logger *slog.Logger) *WatermillBridge {
	if logger == nil {
		logger = slog.Default()
	}
	wmLogger := newSlogAdapter(logger.With("component", "pubsub"))
	// GoChannel is a simple in-memory pub/sub implementation.
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		wmLogger,
	)

	return &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		logger: wmLogger,
	}
}

// mapToWatermillMessage converts our pubsub.Message to a watermill message.
func mapToWatermillMessage(ctx context.Context, msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.SetContext(ctx)

	// Transfer our custom fields to watermill's metadata
	wmMsg.Metadata.Set(metaKeyUserID, msg.UserID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)

	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}

	return wmMsg
}

// mapToPubSubMessage converts a watermill message back to our internal pubsub.Message.
func mapToPubSubMessage(wmMsg *message.Message) Message {
	userID := wmMsg.Metadata.Get(metaKeyUserID)
	topic := wmMsg.Metadata.Get(metaKeyTopic)

	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyUserID && k != metaKeyTopic {
			metadata[k] = v
		}
	}

	return Message{
		Topic:    topic,
		UserID:   userID,
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return wb.pub.Publish(msg.Topic, mapToWatermillMessage(ctx, msg))
}

// Subscribe implements the Subscriber interface. It returns once the
// subscription is active; messages are handled on a separate goroutine.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			msg := mapToPubSubMessage(wmMsg)

			if err := handler(ctx, msg); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				// The in-memory channel does not redeliver usefully, so a failed
				// message is acknowledged after logging.
				wmMsg.Ack()
				continue
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close implements the Publisher and Subscriber interface to shut down the bridge.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}

// Shutdown lets the dependency container close the bridge.
func (wb *WatermillBridge) Shutdown() error {
	return wb.Close()
}

// slogAdapter satisfies watermill.LoggerAdapter on top of slog.
type slogAdapter struct {
	logger *slog.Logger
}

func newSlogAdapter(logger *slog.Logger) watermill.LoggerAdapter {
	return &slogAdapter{logger: logger}
}

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.logger.Error(msg, append(attrs(fields), "error", err)...)
}

func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.logger.Info(msg, attrs(fields)...)
}

func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, attrs(fields)...)
}

// Trace is mapped to debug; slog has no trace level.
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.logger.Debug(msg, attrs(fields)...)
}

func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{logger: a.logger.With(attrs(fields)...)}
}

func attrs(fields watermill.LogFields) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}

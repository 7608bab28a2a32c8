package email

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/nfrund/sameboat/internal/domain"
	"github.com/nfrund/sameboat/internal/pubsub"
)

const welcomeSubject = "Welcome to SameBoat"

// WelcomeSubscriber sends a welcome email for every registered user.
type WelcomeSubscriber struct {
	sender  domain.EmailSender
	baseURL string
}

// NewWelcomeSubscriber creates a WelcomeSubscriber.
func NewWelcomeSubscriber(sender domain.EmailSender, baseURL string) *WelcomeSubscriber {
	return &WelcomeSubscriber{sender: sender, baseURL: baseURL}
}

// Start subscribes to registration events until ctx is canceled.
func (w *WelcomeSubscriber) Start(ctx context.Context, sub pubsub.Subscriber, event pubsub.Event[domain.UserRegistered]) error {
	return event.Subscribe(ctx, sub, w.handle)
}

func (w *WelcomeSubscriber) handle(ctx context.Context, ev domain.UserRegistered) error {
	body := fmt.Sprintf(
		`<p>Hi %s,</p><p>Your SameBoat account is ready. <a href="%s/">Open SameBoat</a></p>`,
		html.EscapeString(ev.Email), w.baseURL,
	)
	if err := w.sender.Send(ev.Email, welcomeSubject, body); err != nil {
		slog.ErrorContext(ctx, "Failed to send welcome email", "email", ev.Email, "error", err)
		return err
	}
	return nil
}

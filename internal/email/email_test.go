package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/sameboat/internal/config"
	"github.com/nfrund/sameboat/internal/domain"
	"github.com/nfrund/sameboat/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, body string
}

type recordingSender struct {
	mu   sync.Mutex
	sent chan sentEmail
}

func (r *recordingSender) Send(to, subject, htmlBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent <- sentEmail{to, subject, htmlBody}
	return nil
}

func TestNewEmailService(t *testing.T) {
	sender, err := NewEmailService(&config.Config{EmailProvider: "log"})
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, sender)

	_, err = NewEmailService(&config.Config{EmailProvider: "resend"})
	assert.Error(t, err, "resend requires an API key")

	sender, err = NewEmailService(&config.Config{EmailProvider: "resend", EmailAPIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, sender)

	_, err = NewEmailService(&config.Config{EmailProvider: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestResendSender_Send(t *testing.T) {
	var got resendPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewResendSender("test-key", "")
	s.endpoint = srv.URL
	require.NoError(t, s.Send("a@b.co", "Hi", "<p>Hi</p>"))
	assert.Equal(t, "a@b.co", got.To)
	assert.Contains(t, got.From, "SameBoat")

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer failing.Close()
	s.endpoint = failing.URL
	assert.Error(t, s.Send("a@b.co", "Hi", "<p>Hi</p>"))
}

func TestWelcomeSubscriber(t *testing.T) {
	bridge := pubsub.NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bridge.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := &recordingSender{sent: make(chan sentEmail, 1)}
	event := pubsub.NewEvent[domain.UserRegistered](domain.TopicUserRegistered)
	require.NoError(t, NewWelcomeSubscriber(sender, "http://localhost:8080").Start(ctx, bridge, event))

	require.NoError(t, event.Publish(ctx, bridge, "u1", domain.UserRegistered{ID: "u1", Email: "a@b.co"}))

	select {
	case mail := <-sender.sent:
		assert.Equal(t, "a@b.co", mail.to)
		assert.Equal(t, welcomeSubject, mail.subject)
		assert.Contains(t, mail.body, "http://localhost:8080/")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a welcome email")
	}
}

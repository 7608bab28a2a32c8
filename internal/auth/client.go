package auth

import (
	"context"

	"github.com/nfrund/sameboat/internal/registration"
)

// ErrorSlot stores the last service error for one visitor.
type ErrorSlot interface {
	Load() string
	Store(message string)
}

// Client is the per-visitor face of the Service: it turns service errors
// into a readable error slot and hands issued tokens to onToken.
type Client struct {
	svc          *Service
	slot         ErrorSlot
	onToken      func(token string)
	errorMessage string
}

var _ registration.Authenticator = (*Client)(nil)

// NewClient creates a Client whose error message starts from slot.
func NewClient(svc *Service, slot ErrorSlot, onToken func(token string)) *Client {
	return &Client{
		svc:          svc,
		slot:         slot,
		onToken:      onToken,
		errorMessage: slot.Load(),
	}
}

// Register creates the account, reporting success. On failure the error
// slot holds the reason.
func (c *Client) Register(ctx context.Context, email, password string) bool {
	token, err := c.svc.Register(ctx, email, password)
	return c.finish(token, err, MsgRegisterFailed)
}

// Login signs the visitor in, reporting success.
func (c *Client) Login(ctx context.Context, email, password string) bool {
	token, err := c.svc.Login(ctx, email, password)
	return c.finish(token, err, MsgLoginFailed)
}

func (c *Client) finish(token string, err error, fallback string) bool {
	if err != nil {
		c.setError(MessageFor(err, fallback))
		return false
	}
	c.setError("")
	if c.onToken != nil {
		c.onToken(token)
	}
	return true
}

// ErrorMessage returns the last service error, or "".
func (c *Client) ErrorMessage() string {
	return c.errorMessage
}

// ClearError empties the error slot.
func (c *Client) ClearError() {
	c.setError("")
}

func (c *Client) setError(message string) {
	if c.errorMessage == message {
		return
	}
	c.errorMessage = message
	c.slot.Store(message)
}

// MemorySlot is an ErrorSlot that lives only as long as the value.
type MemorySlot struct {
	Message string
}

func (m *MemorySlot) Load() string         { return m.Message }
func (m *MemorySlot) Store(message string) { m.Message = message }

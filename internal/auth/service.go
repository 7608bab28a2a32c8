package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nfrund/sameboat/internal/domain"
	"github.com/nfrund/sameboat/internal/pubsub"
)

// UserRegistered is published after every successful sign-up.
var UserRegistered = pubsub.NewEvent[domain.UserRegistered](domain.TopicUserRegistered)

// Messages shown to the visitor when the service fails.
const (
	MsgUserExists         = "An account with this email already exists."
	MsgInvalidCredentials = "Invalid email or password."
	MsgRegisterFailed     = "Could not create your account. Please try again."
	MsgLoginFailed        = "Could not sign you in. Please try again."
	MsgPasswordTooLong    = "Password must be at most 72 bytes."
)

// Service is the authentication service. It is stateless and shared by all
// requests; the per-visitor error slot lives in Client.
type Service struct {
	users     domain.UserRepository
	publisher pubsub.Publisher
}

// NewService creates a Service. publisher may be nil, in which case no
// events are emitted.
func NewService(users domain.UserRepository, publisher pubsub.Publisher) *Service {
	return &Service{users: users, publisher: publisher}
}

// Register creates an account and returns its session token.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	user := &domain.User{Email: strings.TrimSpace(email)}
	token, err := s.users.SignUp(ctx, user, password)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			slog.InfoContext(ctx, "Registration rejected, email taken", "email", user.Email)
		} else {
			slog.ErrorContext(ctx, "Error creating user", "email", user.Email, "error", err)
		}
		return "", err
	}

	if s.publisher != nil {
		payload := domain.UserRegistered{ID: user.ID, Email: user.Email}
		if err := UserRegistered.Publish(ctx, s.publisher, user.ID, payload); err != nil {
			// The account exists; a lost event only costs the welcome email.
			slog.WarnContext(ctx, "Failed to publish registration event", "email", user.Email, "error", err)
		}
	}

	slog.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)
	return token, nil
}

// Login signs an existing user in and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.users.SignIn(ctx, &domain.User{Email: strings.TrimSpace(email)}, password)
	if err != nil {
		slog.WarnContext(ctx, "Failed login attempt", "email", email, "error", err)
		return "", err
	}
	return token, nil
}

// Authenticate resolves a session token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.users.Authenticate(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return user, nil
}

// MessageFor maps a service error to the text shown to the visitor,
// falling back to fallback for unexpected failures.
func MessageFor(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return MsgUserExists
	case errors.Is(err, domain.ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, domain.ErrPasswordTooLong):
		return MsgPasswordTooLong
	default:
		return fallback
	}
}

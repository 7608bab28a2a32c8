package domain

import (
	"context"
	"time"
)

// User represents the core user model in the application domain.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserRepository defines the contract for user data storage operations.
// It lives in the domain because it's a requirement OF the domain, not
// of the database implementation.
type UserRepository interface {
	// SignUp creates the user and returns a session token for it.
	// It returns ErrUserAlreadyExists when the email is taken.
	SignUp(ctx context.Context, user *User, password string) (string, error)
	// SignIn returns a session token, or ErrInvalidCredentials.
	SignIn(ctx context.Context, user *User, password string) (string, error)
	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*User, error)
	// FindUserByEmail returns nil, nil when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*User, error)
}

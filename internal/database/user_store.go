package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nfrund/sameboat/internal/domain"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// surrealUser is the user row as stored in SurrealDB. The password hash is
// never selected into Go.
type surrealUser struct {
	ID        *surrealmodels.RecordID       `json:"id,omitempty"`
	Email     string                        `json:"email"`
	CreatedAt *surrealmodels.CustomDateTime `json:"createdAt,omitempty"`
}

func (u *surrealUser) toDomain() *domain.User {
	user := &domain.User{Email: u.Email}
	if u.ID != nil {
		user.ID = u.ID.String()
	}
	if u.CreatedAt != nil {
		user.CreatedAt = u.CreatedAt.Time
	}
	return user
}

// sessionTTL is how long a token issued by the store stays valid, as a
// SurrealQL duration.
const sessionTTL = "1d"

// SurrealUserStore implements domain.UserRepository on SurrealDB. Passwords
// are hashed with argon2 inside the database; sessions are rows of the
// session table.
type SurrealUserStore struct {
	db *surrealdb.DB
}

var _ domain.UserRepository = (*SurrealUserStore)(nil)

// NewSurrealUserStore creates a new SurrealUserStore.
func NewSurrealUserStore(db *surrealdb.DB) *SurrealUserStore {
	return &SurrealUserStore{db: db}
}

// FindUserByEmail queries for a single user by their email address.
func (s *SurrealUserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := "SELECT id, email, createdAt FROM user WHERE email = $email"
	row, err := QueryOne[surrealUser](ctx, s.db, query, map[string]any{"email": normalizeEmail(email)})
	if err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}
	if row == nil {
		return nil, nil
	}
	return row.toDomain(), nil
}

// SignUp creates the user and opens a session for it.
func (s *SurrealUserStore) SignUp(ctx context.Context, user *domain.User, password string) (string, error) {
	existing, err := s.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", domain.ErrUserAlreadyExists
	}

	query := `CREATE user SET email = $email, password = crypto::argon2::generate($password), createdAt = time::now() RETURN id, email, createdAt`
	row, err := QueryOne[surrealUser](ctx, s.db, query, map[string]any{
		"email":    normalizeEmail(user.Email),
		"password": password,
	})
	if err != nil {
		// Two concurrent sign-ups can both pass the check above; the unique
		// index rejects the second.
		if isDuplicate(err) {
			return "", domain.ErrUserAlreadyExists
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	if row == nil || row.ID == nil {
		return "", errors.New("create user returned no record")
	}

	created := row.toDomain()
	user.ID = created.ID
	user.CreatedAt = created.CreatedAt
	return s.openSession(ctx, row.ID)
}

// SignIn verifies the password inside the database and opens a session.
func (s *SurrealUserStore) SignIn(ctx context.Context, user *domain.User, password string) (string, error) {
	query := "SELECT id, email, createdAt FROM user WHERE email = $email AND crypto::argon2::compare(password, $password)"
	row, err := QueryOne[surrealUser](ctx, s.db, query, map[string]any{
		"email":    normalizeEmail(user.Email),
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("database query failed: %w", err)
	}
	if row == nil || row.ID == nil {
		return "", domain.ErrInvalidCredentials
	}
	user.ID = row.ID.String()
	return s.openSession(ctx, row.ID)
}

// Authenticate resolves an unexpired session token to its user.
func (s *SurrealUserStore) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	query := "SELECT VALUE user.{id, email, createdAt} FROM session WHERE token = $token AND expiresAt > time::now()"
	row, err := QueryOne[surrealUser](ctx, s.db, query, map[string]any{"token": token})
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", err)
	}
	if row == nil || row.ID == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return row.toDomain(), nil
}

func (s *SurrealUserStore) openSession(ctx context.Context, userID *surrealmodels.RecordID) (string, error) {
	token := uuid.NewString()
	query := "CREATE session SET token = $token, user = $user, expiresAt = time::now() + " + sessionTTL
	err := Execute(ctx, s.db, query, map[string]any{
		"token": token,
		"user":  *userID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isDuplicate(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "already contains") || strings.Contains(msg, "already exists")
}

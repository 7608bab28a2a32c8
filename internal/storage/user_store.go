package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nfrund/sameboat/internal/domain"
	"github.com/spf13/afero"
	"golang.org/x/crypto/bcrypt"
)

// FileUserStore implements domain.UserRepository with a JSON file on an
// afero filesystem. Session tokens are kept in memory, so a restart signs
// everyone out.
type FileUserStore struct {
	fs       afero.Fs
	path     string
	hashCost int

	mu       sync.RWMutex
	users    map[string]*domain.User // keyed by normalized email
	sessions map[string]string       // token -> user ID
	now      func() time.Time
}

var _ domain.UserRepository = (*FileUserStore)(nil)

// Option configures a FileUserStore.
type Option func(*FileUserStore)

// WithHashCost sets the bcrypt cost; tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(s *FileUserStore) { s.hashCost = cost }
}

// NewFileUserStore opens the store at path, loading existing users if the
// file exists.
func NewFileUserStore(fs afero.Fs, path string, opts ...Option) (*FileUserStore, error) {
	s := &FileUserStore{
		fs:       fs,
		path:     path,
		hashCost: bcrypt.DefaultCost,
		users:    make(map[string]*domain.User),
		sessions: make(map[string]string),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *FileUserStore) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read user store: %w", err)
	}
	var users []*domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return fmt.Errorf("failed to decode user store %s: %w", s.path, err)
	}
	for _, u := range users {
		s.users[normalizeEmail(u.Email)] = u
	}
	return nil
}

// persist writes all users atomically. Callers hold the write lock.
func (s *FileUserStore) persist() error {
	users := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create user store directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write user store: %w", err)
	}
	return s.fs.Rename(tmp, s.path)
}

func (s *FileUserStore) issueToken(userID string) string {
	token := uuid.NewString()
	s.sessions[token] = userID
	return token
}

// SignUp creates the user with a bcrypt password hash.
func (s *FileUserStore) SignUp(ctx context.Context, user *domain.User, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, exists := s.users[key]; exists {
		return "", domain.ErrUserAlreadyExists
	}

	stored := &domain.User{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(user.Email),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	s.users[key] = stored
	if err := s.persist(); err != nil {
		delete(s.users, key)
		return "", err
	}

	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt
	return s.issueToken(stored.ID), nil
}

// SignIn checks the password and issues a new token.
func (s *FileUserStore) SignIn(ctx context.Context, user *domain.User, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[normalizeEmail(user.Email)]
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	user.ID = stored.ID
	return s.issueToken(stored.ID), nil
}

// Authenticate resolves a token issued by SignUp or SignIn.
func (s *FileUserStore) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	for _, u := range s.users {
		if u.ID == id {
			return publicCopy(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

// FindUserByEmail returns nil, nil when no user matches.
func (s *FileUserStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	return publicCopy(u), nil
}

// publicCopy strips the password hash.
func publicCopy(u *domain.User) *domain.User {
	c := *u
	c.PasswordHash = ""
	return &c
}

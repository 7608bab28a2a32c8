package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/sameboat/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// schema defines the tables used by SurrealUserStore. It is idempotent.
const schema = `
DEFINE TABLE IF NOT EXISTS user SCHEMALESS;
DEFINE INDEX IF NOT EXISTS user_email_unique ON TABLE user FIELDS email UNIQUE;
DEFINE TABLE IF NOT EXISTS session SCHEMALESS;
DEFINE INDEX IF NOT EXISTS session_token ON TABLE session FIELDS token UNIQUE;
`

// NewDB connects to SurrealDB, signs in with the configured root user and
// selects the namespace and database.
func NewDB(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBUrl())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb: %w", err)
	}

	authData := &surrealdb.Auth{
		Username: cfg.GetDBUser(),
		Password: cfg.GetDBPass(),
	}

	if _, err = db.SignIn(ctx, authData); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.Info("Successfully signed in to SurrealDB", "ns", cfg.GetDBNs(), "db", cfg.GetDBDb())
	return db, nil
}

// EnsureSchema applies the table and index definitions.
func EnsureSchema(ctx context.Context, db *surrealdb.DB) error {
	if err := Execute(ctx, db, schema, nil); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

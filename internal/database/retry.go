package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"net/url"
	"time"

	"github.com/nfrund/sameboat/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// Retryer retries an operation with exponential backoff and jitter.
type Retryer struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	multiplier float64
	jitter     bool
}

// NewRetryer returns a Retryer making up to maxRetries extra attempts.
func NewRetryer(maxRetries int, baseDelay time.Duration) *Retryer {
	return &Retryer{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   10 * time.Second,
		multiplier: 2.0,
		jitter:     true,
	}
}

// Retry runs fn until it succeeds, ctx ends or the attempts run out.
func (r *Retryer) Retry(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == r.maxRetries {
			break
		}

		delay := r.delay(attempt)
		slog.DebugContext(ctx, "Retry attempt failed, waiting before next attempt",
			"attempt", attempt+1, "max_attempts", r.maxRetries+1,
			"delay_ms", delay.Milliseconds(), "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", r.maxRetries+1, lastErr)
}

func (r *Retryer) delay(attempt int) time.Duration {
	d := float64(r.baseDelay) * math.Pow(r.multiplier, float64(attempt))
	if d > float64(r.maxDelay) {
		d = float64(r.maxDelay)
	}
	if r.jitter {
		// Up to 25% on top.
		d += rand.Float64() * d * 0.25
	}
	return time.Duration(d)
}

// Connect opens the database, retrying while SurrealDB is still starting.
func Connect(ctx context.Context, cfg config.Provider, r *Retryer) (*surrealdb.DB, error) {
	var db *surrealdb.DB
	err := r.Retry(ctx, func() error {
		var err error
		db, err = NewDB(ctx, cfg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", redactDBURL(cfg.GetDBUrl()), err)
	}
	return db, nil
}

// Ping asks the server for its version as a lightweight health check.
func Ping(ctx context.Context, db *surrealdb.DB) error {
	if _, err := db.Version(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// redactDBURL hides the password of a database URL for logging.
func redactDBURL(dbURL string) string {
	parsedURL, err := url.Parse(dbURL)
	if err != nil {
		return "invalid-url"
	}
	return parsedURL.Redacted()
}

package database

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/sameboat/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Ping(context.Background(), db))

	baseCfg := config.FromEnv()
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"invalid URL", func(c *config.Config) { c.DBUrl = "invalid://url" }},
		{"invalid credentials", func(c *config.Config) { c.DBPass = "wrongpassword" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *baseCfg
			tt.mutate(&cfg)

			db, err := NewDB(context.Background(), &cfg)
			assert.Error(t, err)
			assert.Nil(t, db)
		})
	}
}

func TestConnect_GivesUpAfterRetries(t *testing.T) {
	setupTestDB(t)

	cfg := *config.FromEnv()
	cfg.DBPass = "wrongpassword"

	db, err := Connect(context.Background(), &cfg, NewRetryer(1, time.Millisecond))
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, EnsureSchema(context.Background(), db))
}

package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/content-studio-api/internal/database"
)

// Postgres stores key-value pairs in the kv_store table
type Postgres struct {
	db *database.DB
}

// NewPostgres creates a Postgres-backed store
func NewPostgres(db *database.DB) *Postgres {
	return &Postgres{db: db}
}

// Get retrieves the raw value stored under key
func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.GetContext(ctx, &value, "SELECT value FROM kv_store WHERE key = $1", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set upserts the raw value under key
func (p *Postgres) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PreferenceRepository stores preferences in PostgreSQL.
type PreferenceRepository struct {
	db   *DB
	pool *pgxpool.Pool
}

// NewPreferenceRepository creates a repository over an open DB.
// Close closes the DB.
func NewPreferenceRepository(database *DB) *PreferenceRepository {
	return &PreferenceRepository{db: database, pool: database.Pool()}
}

// NewPreferenceRepositoryFromPool creates a repository over a pool owned
// by the caller. Close is a no-op.
func NewPreferenceRepositoryFromPool(pool *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{pool: pool}
}

// Get loads the value of key.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM preferences WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("querying preference %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or updates key.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO preferences (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("saving preference %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (r *PreferenceRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM preferences WHERE key = $1`, key); err != nil {
		return fmt.Errorf("deleting preference %q: %w", key, err)
	}
	return nil
}

// Close releases the connection pool if the repository owns it.
func (r *PreferenceRepository) Close() error {
	if r.db != nil {
		r.db.Close()
	}
	return nil
}

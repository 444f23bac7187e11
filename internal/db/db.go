// Package db stores single-player preferences in PostgreSQL or SQLite.
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/bqsolo/internal/config"
)

// PreferenceStore is a string key/value store.
type PreferenceStore interface {
	// Get returns the value of key; ok is false if the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DB wraps a pgx connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a DB handle.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// Pool returns the underlying pgx pool.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// OpenPreferences opens the store selected by cfg.Driver and applies its
// migrations. Driver "none" (or empty) returns a nil store.
func OpenPreferences(ctx context.Context, cfg config.Preferences) (PreferenceStore, error) {
	switch cfg.Driver {
	case config.DriverNone, "":
		return nil, nil

	case config.DriverSQLite:
		store, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		slog.Info("preferences store opened", "driver", cfg.Driver, "path", cfg.SQLitePath)
		return store, nil

	case config.DriverPostgres:
		dsn := cfg.PostgresDSN()
		if err := RunMigrations(ctx, dsn); err != nil {
			return nil, err
		}
		database, err := New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		slog.Info("preferences store opened", "driver", cfg.Driver)
		return NewPreferenceRepository(database), nil

	default:
		return nil, fmt.Errorf("unknown preferences driver %q", cfg.Driver)
	}
}

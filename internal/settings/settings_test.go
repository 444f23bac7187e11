package settings

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/bqsolo/internal/db"
)

type memStore struct {
	values map[string]string
	err    error
	gets   int
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	m.gets++
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func TestResolver_Overrides(t *testing.T) {
	tests := []struct {
		override string
		want     bool
	}{
		{"?singleplayer=1", true},
		{"?SinglePlayer = TRUE", true},
		{"#foo&singleplayer=yes", true},
		{"?singleplayer=0", false},
		{"?singleplayer=no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.override, func(t *testing.T) {
			r := NewResolver(nil, tt.override)
			if got := r.IsEnabled(context.Background()); got != tt.want {
				t.Errorf("IsEnabled() with %q = %v, want %v", tt.override, got, tt.want)
			}
		})
	}
}

func TestResolver_StoredValue(t *testing.T) {
	tests := []struct {
		stored string
		want   bool
	}{
		{"1", true},
		{"true", true},
		{"yes", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Run(tt.stored, func(t *testing.T) {
			store := newMemStore()
			store.values[StorageKey] = tt.stored
			r := NewResolver(store)
			if got := r.IsEnabled(context.Background()); got != tt.want {
				t.Errorf("IsEnabled() with stored %q = %v, want %v", tt.stored, got, tt.want)
			}
		})
	}
}

func TestResolver_Cached(t *testing.T) {
	store := newMemStore()
	r := NewResolver(store)
	ctx := context.Background()

	assert.False(t, r.IsEnabled(ctx))
	store.values[StorageKey] = "1"
	assert.False(t, r.IsEnabled(ctx), "first resolution is cached")
	assert.Equal(t, 1, store.gets)
}

func TestResolver_Remember(t *testing.T) {
	store := newMemStore()
	r := NewResolver(store)
	ctx := context.Background()

	r.Remember(ctx, true)
	assert.True(t, r.IsEnabled(ctx))
	assert.Equal(t, "1", store.values[StorageKey])

	r.Remember(ctx, false)
	assert.False(t, r.IsEnabled(ctx))
	_, ok := store.values[StorageKey]
	assert.False(t, ok)
}

func TestResolver_StoreErrorsIgnored(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("storage unavailable")
	r := NewResolver(store)
	ctx := context.Background()

	assert.False(t, r.IsEnabled(ctx))
	r.Remember(ctx, true)
	assert.True(t, r.IsEnabled(ctx))
}

func TestResolver_SQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	store, err := db.OpenSQLite(ctx, path)
	require.NoError(t, err)
	NewResolver(store).Remember(ctx, true)
	require.NoError(t, store.Close())

	reopened, err := db.OpenSQLite(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	assert.True(t, NewResolver(reopened).IsEnabled(ctx))
}

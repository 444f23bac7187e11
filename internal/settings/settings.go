// Package settings decides whether the game runs in single-player mode.
package settings

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
)

// StorageKey is the key of the remembered flag.
const StorageKey = "bq-singleplayer"

var overridePattern = regexp.MustCompile(`(?i)singleplayer\s*=\s*(1|true|yes)`)

// Store persists the flag. db.PreferenceStore implements it.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Resolver resolves the single-player flag once and caches it.
//
// The flag is on when any override string contains singleplayer=1, true
// or yes, or when the store holds "1" or "true". Storage errors are
// logged and treated as "not set".
type Resolver struct {
	store     Store
	overrides []string

	mu     sync.Mutex
	cached *bool
}

// NewResolver creates a resolver. store may be nil.
func NewResolver(store Store, overrides ...string) *Resolver {
	return &Resolver{store: store, overrides: overrides}
}

// IsEnabled reports whether single-player mode is on.
func (r *Resolver) IsEnabled(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached == nil {
		enabled := r.overridden() || r.stored(ctx)
		r.cached = &enabled
	}
	return *r.cached
}

// Remember stores the flag and updates the cached value. Disabling
// removes the stored key.
func (r *Resolver) Remember(ctx context.Context, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cached = &enabled
	if r.store == nil {
		return
	}

	var err error
	if enabled {
		err = r.store.Set(ctx, StorageKey, "1")
	} else {
		err = r.store.Delete(ctx, StorageKey)
	}
	if err != nil {
		slog.Warn("remembering single-player preference", "enabled", enabled, "error", err)
	}
}

func (r *Resolver) overridden() bool {
	for _, s := range r.overrides {
		if overridePattern.MatchString(s) {
			return true
		}
	}
	return false
}

func (r *Resolver) stored(ctx context.Context) bool {
	if r.store == nil {
		return false
	}
	value, ok, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		slog.Warn("reading single-player preference", "error", err)
		return false
	}
	return ok && (value == "1" || value == "true")
}

package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
	"github.com/louisbranch/deepthoughts/internal/services/web/storage"
	websqlite "github.com/louisbranch/deepthoughts/internal/services/web/storage/sqlite"
)

// OpenStore opens the web cache store when a storage path is provided.
func OpenStore(path string) (*websqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create web cache dir: %w", err)
		}
	}
	store, err := websqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open web cache sqlite store: %w", err)
	}
	return store, nil
}

// StoreCache adapts a storage.Store to the GraphQL response cache.
type StoreCache struct {
	store storage.Store
	now   func() time.Time
}

// NewStoreCache wraps store; store must be non-nil.
func NewStoreCache(store storage.Store) *StoreCache {
	return &StoreCache{store: store, now: time.Now}
}

// Lookup implements graphql.Cache.
func (c *StoreCache) Lookup(ctx context.Context, scope, key string) ([]byte, bool, error) {
	entry, found, err := c.store.GetCacheEntry(ctx, scope, key)
	if err != nil || !found {
		return nil, false, err
	}
	return entry.PayloadBytes, true, nil
}

// Store implements graphql.Cache.
func (c *StoreCache) Store(ctx context.Context, scope, key string, payload []byte) error {
	return c.store.PutCacheEntry(ctx, storage.CacheEntry{
		Scope:        scope,
		CacheKey:     key,
		PayloadBytes: payload,
		RefreshedAt:  c.now().UTC(),
	})
}

// InvalidateScope implements graphql.Cache.
func (c *StoreCache) InvalidateScope(ctx context.Context, scope string) error {
	return c.store.DeleteCacheScope(ctx, scope)
}

// InvalidateAll implements graphql.Cache.
func (c *StoreCache) InvalidateAll(ctx context.Context) error {
	return c.store.DeleteAllCacheEntries(ctx)
}

var _ graphql.Cache = (*StoreCache)(nil)

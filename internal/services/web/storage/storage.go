package storage

import (
	"context"
	"time"
)

// CacheEntry stores one encoded GraphQL response.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	RefreshedAt  time.Time
}

// Store is the persistence contract for cached responses.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, scope, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheScope(ctx context.Context, scope string) error
	DeleteAllCacheEntries(ctx context.Context) error
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	webstorage "github.com/louisbranch/deepthoughts/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for cached responses.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a response cache store. Entries left by an earlier
// process are dropped, so cached responses never outlive the process that
// fetched them.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := applyMigrations(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := store.DeleteAllCacheEntries(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("reset cache: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCacheEntry loads one cached payload.
func (s *Store) GetCacheEntry(ctx context.Context, scope, cacheKey string) (webstorage.CacheEntry, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.CacheEntry{}, false, fmt.Errorf("storage is not configured")
	}
	scope, cacheKey = strings.TrimSpace(scope), strings.TrimSpace(cacheKey)
	if scope == "" || cacheKey == "" {
		return webstorage.CacheEntry{}, false, fmt.Errorf("cache scope and key are required")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT scope, cache_key, payload_json, refreshed_at
		 FROM response_cache
		 WHERE scope = ? AND cache_key = ?`,
		scope, cacheKey,
	)
	var entry webstorage.CacheEntry
	var refreshedAt int64
	if err := row.Scan(&entry.Scope, &entry.CacheKey, &entry.PayloadBytes, &refreshedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.CacheEntry{}, false, nil
		}
		return webstorage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	entry.RefreshedAt = unixMillisToTime(refreshedAt)
	return entry, true, nil
}

// PutCacheEntry upserts one cached payload.
func (s *Store) PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.Scope == "" || entry.CacheKey == "" {
		return fmt.Errorf("cache scope and key are required")
	}
	if len(entry.PayloadBytes) == 0 {
		return fmt.Errorf("cache payload is required")
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO response_cache (scope, cache_key, payload_json, refreshed_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(scope, cache_key) DO UPDATE SET
		    payload_json = excluded.payload_json,
		    refreshed_at = excluded.refreshed_at`,
		entry.Scope,
		entry.CacheKey,
		entry.PayloadBytes,
		entry.RefreshedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheScope removes every entry of one identity scope.
func (s *Store) DeleteCacheScope(ctx context.Context, scope string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM response_cache WHERE scope = ?`, scope); err != nil {
		return fmt.Errorf("delete cache scope: %w", err)
	}
	return nil
}

// DeleteAllCacheEntries empties the cache.
func (s *Store) DeleteAllCacheEntries(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM response_cache`); err != nil {
		return fmt.Errorf("delete cache entries: %w", err)
	}
	return nil
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)

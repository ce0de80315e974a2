package graphql

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"sync"
)

// AnonymousScope is the cache scope of requests without a token.
const AnonymousScope = "anonymous"

// Cache stores encoded query responses by identity scope and operation key.
//
// Entries never expire on their own. Stored payloads are treated as
// immutable: an update replaces the slice, it never edits it.
type Cache interface {
	Lookup(ctx context.Context, scope, key string) ([]byte, bool, error)
	Store(ctx context.Context, scope, key string, payload []byte) error
	InvalidateScope(ctx context.Context, scope string) error
	InvalidateAll(ctx context.Context) error
}

// ScopeForToken derives the cache scope for a bearer token. Tokens are hashed
// so raw credentials never become cache keys.
func ScopeForToken(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return AnonymousScope
	}
	sum := sha256.Sum256([]byte(token))
	return "token:" + hex.EncodeToString(sum[:16])
}

// CacheKey derives the cache key of an operation and its variables.
// Whitespace differences in the document do not change the key; variables
// are compared by their canonical JSON encoding.
func CacheKey(op Operation, vars Variables) (string, error) {
	encodedVars := []byte("{}")
	if len(vars) > 0 {
		var err error
		encodedVars, err = json.Marshal(vars)
		if err != nil {
			return "", err
		}
	}
	h := sha256.New()
	h.Write([]byte(strings.TrimSpace(op.Name)))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(strings.Fields(op.Query), " ")))
	h.Write([]byte{0})
	h.Write(encodedVars)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// MemoryCache is the default process-lifetime Cache.
type MemoryCache struct {
	mu     sync.RWMutex
	scopes map[string]map[string][]byte
}

// NewMemoryCache returns an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{scopes: make(map[string]map[string][]byte)}
}

// Lookup returns the payload stored under scope and key.
func (c *MemoryCache) Lookup(_ context.Context, scope, key string) ([]byte, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.scopes[scope][key]
	return payload, ok, nil
}

// Store replaces the payload under scope and key.
func (c *MemoryCache) Store(_ context.Context, scope, key string, payload []byte) error {
	stored := append([]byte(nil), payload...)
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.scopes[scope]
	if !ok {
		entries = make(map[string][]byte)
		c.scopes[scope] = entries
	}
	entries[key] = stored
	return nil
}

// InvalidateScope drops every entry of one scope.
func (c *MemoryCache) InvalidateScope(_ context.Context, scope string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.scopes, scope)
	return nil
}

// InvalidateAll drops every entry.
func (c *MemoryCache) InvalidateAll(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scopes = make(map[string]map[string][]byte)
	return nil
}

// Len returns the number of stored entries across scopes.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := 0
	for _, entries := range c.scopes {
		total += len(entries)
	}
	return total
}

var _ Cache = (*MemoryCache)(nil)

package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultFlightTimeout bounds a shared query flight once it no longer follows
// any single caller's context.
const DefaultFlightTimeout = 10 * time.Second

// Config describes how to build a Client.
type Config struct {
	// BaseURL is the upstream origin; operations are posted to BaseURL/graphql.
	BaseURL    string
	HTTPClient *http.Client
	// Transport replaces the HTTP link. Tests use it to observe the chain.
	Transport Handler
	Tokens    TokenStore
	// Cache defaults to a MemoryCache.
	Cache Cache
	// FlightTimeout defaults to DefaultFlightTimeout.
	FlightTimeout time.Duration
	Logger        *log.Logger
}

// Client executes operations through the link chain and the response cache.
// It is safe for concurrent use.
type Client struct {
	chain  Handler
	cache  Cache
	tokens TokenStore
	logger *log.Logger
	flight singleflight.Group

	flightTimeout time.Duration
	// generation advances on every invalidation. A query flight only stores
	// its response when the generation it started under is still current.
	generation atomic.Uint64
	// invalidating is held exclusively while the generation advances and the
	// cache is cleared, and shared while a flight stores its response.
	invalidating sync.RWMutex
}

// New builds a client whose chain is AuthLink followed by the transport.
func New(cfg Config) (*Client, error) {
	transport := cfg.Transport
	if transport == nil {
		link, err := HTTPLink(cfg.BaseURL, cfg.HTTPClient)
		if err != nil {
			return nil, fmt.Errorf("build http link: %w", err)
		}
		transport = link
	}
	cache := cfg.Cache
	if cache == nil {
		cache = NewMemoryCache()
	}
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = TokenStoreFunc(func(context.Context) string { return "" })
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	flightTimeout := cfg.FlightTimeout
	if flightTimeout <= 0 {
		flightTimeout = DefaultFlightTimeout
	}
	return &Client{
		chain:         Chain(transport, AuthLink(tokens)),
		cache:         cache,
		tokens:        tokens,
		logger:        logger,
		flightTimeout: flightTimeout,
	}, nil
}

// Execute runs op with vars.
//
// Queries are answered from the cache of the caller's identity scope when
// present; otherwise the chain runs and a successful response is stored.
// Mutations always run the chain and clear the whole cache on success.
// Failed operations leave the cache untouched.
//
// Identical concurrent queries share one transport call. The shared call is
// detached from each caller's cancellation: a caller whose ctx ends gets
// ctx.Err() while the others keep waiting for the result.
func (c *Client) Execute(ctx context.Context, op Operation, vars Variables) (Response, error) {
	req := Request{Operation: op, Variables: vars}
	if op.Kind() == KindMutation {
		resp, err := c.send(ctx, req)
		if err != nil {
			return resp, err
		}
		// The upstream already applied the mutation, so the caller leaving
		// must not skip the invalidation.
		invalidateCtx := context.WithoutCancel(ctx)
		if err := c.invalidate(invalidateCtx, func(ctx context.Context) error { return c.cache.InvalidateAll(ctx) }); err != nil {
			c.logger.Printf("graphql cache invalidate failed operation=%s err=%v", op.Name, err)
		}
		return resp, nil
	}

	key, err := CacheKey(op, vars)
	if err != nil {
		return Response{}, fmt.Errorf("graphql: cache key for %s: %w", op.Name, err)
	}
	scope := ScopeForToken(c.tokens.Token(ctx))
	if resp, ok := c.lookup(ctx, scope, key); ok {
		return resp, nil
	}

	generation := c.generation.Load()
	flightKey := strconv.FormatUint(generation, 10) + "/" + scope + "/" + key
	results := c.flight.DoChan(flightKey, func() (any, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
		defer cancel()
		// A flight that finished between our lookup and DoChan already stored it.
		if resp, ok := c.lookup(flightCtx, scope, key); ok {
			return resp, nil
		}
		resp, err := c.send(flightCtx, req)
		if err != nil {
			return resp, err
		}
		c.store(flightCtx, generation, scope, key, resp)
		return resp, nil
	})
	select {
	case <-ctx.Done():
		return Response{}, fmt.Errorf("graphql: %s: %w", op.Name, ctx.Err())
	case result := <-results:
		resp, _ := result.Val.(Response)
		return resp, result.Err
	}
}

// Invalidate drops every cached response.
func (c *Client) Invalidate(ctx context.Context) error {
	if err := c.invalidate(ctx, func(ctx context.Context) error { return c.cache.InvalidateAll(ctx) }); err != nil {
		return fmt.Errorf("graphql: invalidate cache: %w", err)
	}
	return nil
}

// InvalidateScope drops the cached responses of the identity behind token.
func (c *Client) InvalidateScope(ctx context.Context, token string) error {
	scope := ScopeForToken(token)
	if err := c.invalidate(ctx, func(ctx context.Context) error { return c.cache.InvalidateScope(ctx, scope) }); err != nil {
		return fmt.Errorf("graphql: invalidate cache scope: %w", err)
	}
	return nil
}

// invalidate advances the generation and runs drop, so query flights that
// started earlier cannot store their responses afterwards.
func (c *Client) invalidate(ctx context.Context, drop func(context.Context) error) error {
	c.invalidating.Lock()
	defer c.invalidating.Unlock()
	c.generation.Add(1)
	return drop(ctx)
}

func (c *Client) send(ctx context.Context, req Request) (Response, error) {
	resp, err := c.chain(ctx, req)
	if err != nil {
		return Response{}, err
	}
	if err := resp.Err(); err != nil {
		return resp, err
	}
	return resp, nil
}

func (c *Client) lookup(ctx context.Context, scope, key string) (Response, bool) {
	payload, ok, err := c.cache.Lookup(ctx, scope, key)
	if err != nil {
		c.logger.Printf("graphql cache lookup failed scope=%s err=%v", scope, err)
		return Response{}, false
	}
	if !ok {
		return Response{}, false
	}
	var resp Response
	if err := json.Unmarshal(payload, &resp); err != nil {
		c.logger.Printf("graphql cache entry unreadable scope=%s err=%v", scope, err)
		return Response{}, false
	}
	return resp, true
}

func (c *Client) store(ctx context.Context, generation uint64, scope, key string, resp Response) {
	payload, err := json.Marshal(resp)
	if err != nil {
		c.logger.Printf("graphql cache encode failed scope=%s err=%v", scope, err)
		return
	}
	c.invalidating.RLock()
	defer c.invalidating.RUnlock()
	if c.generation.Load() != generation {
		return
	}
	if err := c.cache.Store(ctx, scope, key, payload); err != nil {
		c.logger.Printf("graphql cache store failed scope=%s err=%v", scope, err)
	}
}

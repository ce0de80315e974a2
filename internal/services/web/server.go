package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/deepthoughts/internal/platform/timeouts"
	webcache "github.com/louisbranch/deepthoughts/internal/services/web/integration/cache"
	"github.com/louisbranch/deepthoughts/internal/services/web/storage"
)

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	cacheStore storage.Store
	logger     *log.Logger
}

// NewServer builds a configured web server. A CacheDBPath switches the
// response cache from memory to SQLite.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.GraphQLURL) == "" {
		return nil, errors.New("graphql url is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	var cacheStore storage.Store
	if config.Cache == nil {
		store, err := webcache.OpenStore(config.CacheDBPath)
		if err != nil {
			return nil, err
		}
		if store != nil {
			cacheStore = store
			config.Cache = webcache.NewStoreCache(store)
		}
	}

	handler, err := NewHandler(config)
	if err != nil {
		if cacheStore != nil {
			_ = cacheStore.Close()
		}
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		cacheStore: cacheStore,
		logger:     logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the cache store.
func (s *Server) Close() {
	if s == nil || s.cacheStore == nil {
		return
	}
	if err := s.cacheStore.Close(); err != nil {
		s.logger.Printf("close web cache store: %v", err)
	}
}

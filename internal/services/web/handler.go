package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/deepthoughts/internal/platform/timeouts"
	"github.com/louisbranch/deepthoughts/internal/services/web/composition"
	"github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/authctx"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/httpx"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/observability"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
	"github.com/louisbranch/deepthoughts/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// GraphQLURL is the API origin; operations go to GraphQLURL/graphql.
	GraphQLURL          string
	CacheDBPath         string
	RequestTimeout      time.Duration
	TrustForwardedProto bool

	// Cache replaces the in-memory response cache.
	Cache      graphql.Cache
	HTTPClient *http.Client
	Logger     *log.Logger
	Now        func() time.Time
}

// NewHandler builds the data client once and serves every page, the static
// assets and the health check through the shared middleware.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = timeouts.Request
	}

	client, err := graphql.New(graphql.Config{
		BaseURL:       strings.TrimSpace(cfg.GraphQLURL),
		HTTPClient:    cfg.HTTPClient,
		Tokens:        authctx.Tokens,
		Cache:         cfg.Cache,
		FlightTimeout: requestTimeout,
		Logger:        logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build graphql client: %w", err)
	}

	appHandler, err := composition.ComposeAppHandler(composition.ComposeInput{
		Gateway: thoughtsapi.NewGateway(client),
		Dependencies: module.Dependencies{
			Client:              client,
			ResolveViewer:       viewerResolver(now),
			RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			Logger:              logger,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compose pages: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc(routepath.Health, handleHealth)
	mux.Handle(routepath.Root, appHandler)

	return httpx.Chain(mux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		authctx.Middleware(now),
		requestDeadline(requestTimeout),
	), nil
}

func viewerResolver(now func() time.Time) module.ResolveViewer {
	return func(r *http.Request) module.Viewer {
		claims, ok := authctx.ParseClaims(authctx.TokenFromContext(r.Context()), now())
		if !ok {
			return module.Viewer{}
		}
		return module.Viewer{Username: claims.Username, Email: claims.Email, UserID: claims.ID}
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		httpx.MethodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// requestDeadline bounds the request context so upstream calls are
// abandoned once the browser would have given up.
func requestDeadline(timeout time.Duration) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

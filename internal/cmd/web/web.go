// Package web parses web command configuration and starts the service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/louisbranch/deepthoughts/internal/platform/cmd"
	"github.com/louisbranch/deepthoughts/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"DEEPTHOUGHTS_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	GraphQLURL          string        `env:"DEEPTHOUGHTS_WEB_GRAPHQL_URL" envDefault:"http://localhost:3001"`
	CacheDBPath         string        `env:"DEEPTHOUGHTS_WEB_CACHE_DB_PATH"`
	RequestTimeout      time.Duration `env:"DEEPTHOUGHTS_WEB_REQUEST_TIMEOUT" envDefault:"10s"`
	TrustForwardedProto bool          `env:"DEEPTHOUGHTS_WEB_TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GraphQLURL, "graphql-url", cfg.GraphQLURL, "GraphQL API origin; operations are sent to <url>/graphql")
	fs.StringVar(&cfg.CacheDBPath, "cache-db-path", cfg.CacheDBPath, "SQLite response cache path (empty keeps the cache in memory)")
	fs.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "Per-request deadline")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when deciding cookie security")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			GraphQLURL:          cfg.GraphQLURL,
			CacheDBPath:         cfg.CacheDBPath,
			RequestTimeout:      cfg.RequestTimeout,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Logger:              log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

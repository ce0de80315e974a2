package web

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestNewServerValidatesConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing http addr", cfg: Config{GraphQLURL: "http://localhost:3001"}},
		{name: "missing graphql url", cfg: Config{HTTPAddr: "localhost:0"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewServer(tc.cfg); err == nil {
				t.Fatal("expected config error")
			}
		})
	}
}

func TestNewServerOpensSQLiteCache(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cache", "web.db")
	server, err := NewServer(Config{
		HTTPAddr:    "127.0.0.1:0",
		GraphQLURL:  "http://localhost:3001",
		CacheDBPath: path,
		Logger:      log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.Close()

	if server.cacheStore == nil {
		t.Fatal("expected sqlite cache store")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("cache db not created: %v", err)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{
		HTTPAddr:   "127.0.0.1:0",
		GraphQLURL: "http://localhost:3001",
		Logger:     log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var server *Server
	server.Close()
	if err := server.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}

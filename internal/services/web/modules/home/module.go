// Package home serves the thought feed at the site root.
package home

import (
	"context"
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// Gateway is the slice of the thoughts API the home page uses.
type Gateway interface {
	Thoughts(ctx context.Context, username string) ([]thoughtsapi.Thought, error)
	Me(ctx context.Context, basic bool) (thoughtsapi.Profile, error)
	AddThought(ctx context.Context, text string) (thoughtsapi.Thought, error)
}

// Page renders the feed and accepts new thoughts.
type Page struct {
	handlers handlers
}

// New returns the home page.
func New(gateway Gateway, deps module.Dependencies) Page {
	return Page{handlers: handlers{Base: modulehandler.NewBase(deps), gateway: gateway}}
}

// ID returns a stable page identifier.
func (Page) ID() string { return "home" }

// Routes returns the patterns the page owns.
func (Page) Routes() []string { return []string{routepath.Root} }

// Serve handles GET for the feed and POST for a new thought.
func (p Page) Serve(w http.ResponseWriter, r *http.Request, _ route.Params) {
	modulehandler.Methods{Get: p.handlers.handleFeed, Post: p.handlers.handleAddThought}.ServeHTTP(w, r)
}

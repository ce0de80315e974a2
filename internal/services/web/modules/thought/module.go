// Package thought serves a single thought with its reactions.
package thought

import (
	"context"
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// Gateway is the slice of the thoughts API the thought page uses.
type Gateway interface {
	Thought(ctx context.Context, thoughtID string) (thoughtsapi.Thought, error)
	AddReaction(ctx context.Context, thoughtID, body string) error
}

// Page renders one thought and accepts reactions.
type Page struct {
	handlers handlers
}

// New returns the single-thought page.
func New(gateway Gateway, deps module.Dependencies) Page {
	return Page{handlers: handlers{Base: modulehandler.NewBase(deps), gateway: gateway}}
}

// ID returns a stable page identifier.
func (Page) ID() string { return "thought" }

// Routes returns the patterns the page owns.
func (Page) Routes() []string { return []string{routepath.ThoughtPattern} }

// Serve handles GET for the thought and POST for a reaction.
func (p Page) Serve(w http.ResponseWriter, r *http.Request, params route.Params) {
	thoughtID := params.Get(routepath.ThoughtIDParam)
	modulehandler.Methods{
		Get:  func(w http.ResponseWriter, r *http.Request) { p.handlers.handleThought(w, r, thoughtID) },
		Post: func(w http.ResponseWriter, r *http.Request) { p.handlers.handleAddReaction(w, r, thoughtID) },
	}.ServeHTTP(w, r)
}

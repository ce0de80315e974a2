// Package profile serves the viewer's own profile and other users' profiles.
package profile

import (
	"context"
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// Gateway is the slice of the thoughts API the profile page uses.
type Gateway interface {
	User(ctx context.Context, username string) (thoughtsapi.Profile, error)
	Me(ctx context.Context, basic bool) (thoughtsapi.Profile, error)
	AddThought(ctx context.Context, text string) (thoughtsapi.Thought, error)
	AddFriend(ctx context.Context, friendID string) error
}

// Page renders /profile and /profile/{username}.
type Page struct {
	handlers handlers
}

// New returns the profile page.
func New(gateway Gateway, deps module.Dependencies) Page {
	return Page{handlers: handlers{Base: modulehandler.NewBase(deps), gateway: gateway}}
}

// ID returns a stable page identifier.
func (Page) ID() string { return "profile" }

// Routes returns the patterns the page owns.
func (Page) Routes() []string {
	return []string{routepath.Profile, routepath.ProfilePattern}
}

// Serve dispatches on whether a username was bound. Without one the page
// shows the viewer's own profile; POST adds a thought there and a friend on
// another user's profile.
func (p Page) Serve(w http.ResponseWriter, r *http.Request, params route.Params) {
	username, named := params.Lookup(routepath.UsernameParam)
	if !named {
		modulehandler.Methods{Get: p.handlers.handleOwn, Post: p.handlers.handleAddThought}.ServeHTTP(w, r)
		return
	}
	modulehandler.Methods{
		Get:  func(w http.ResponseWriter, r *http.Request) { p.handlers.handleUser(w, r, username) },
		Post: func(w http.ResponseWriter, r *http.Request) { p.handlers.handleAddFriend(w, r, username) },
	}.ServeHTTP(w, r)
}

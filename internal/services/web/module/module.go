// Package module defines the page contract used by web composition.
package module

import (
	"context"
	"log"
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
)

// Viewer is the signed-in user as read from the token cookie. The zero value
// is an anonymous visitor.
type Viewer struct {
	Username string
	Email    string
	UserID   string
}

// SignedIn reports whether the viewer carries a usable token.
func (v Viewer) SignedIn() bool {
	return v.Username != ""
}

// ResolveViewer resolves the viewer for a request.
type ResolveViewer func(*http.Request) Viewer

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// DataClient is the GraphQL surface pages depend on.
type DataClient interface {
	Execute(ctx context.Context, op graphql.Operation, vars graphql.Variables) (graphql.Response, error)
	InvalidateScope(ctx context.Context, token string) error
}

// Dependencies carries the shared services every page is built with.
type Dependencies struct {
	Client              DataClient
	ResolveViewer       ResolveViewer
	ResolveLanguage     ResolveLanguage
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *log.Logger
}

// Viewer resolves the request viewer, anonymous when no resolver is set.
func (d Dependencies) Viewer(r *http.Request) Viewer {
	if d.ResolveViewer == nil || r == nil {
		return Viewer{}
	}
	return d.ResolveViewer(r)
}

// Page is one routable screen. Routes lists the patterns it owns in the
// route table; Serve receives the parameters bound by the match.
type Page interface {
	ID() string
	Routes() []string
	Serve(w http.ResponseWriter, r *http.Request, params route.Params)
}

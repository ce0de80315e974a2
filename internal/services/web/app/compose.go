// Package app composes page modules into the routed root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// ComposeInput carries the pages and shared composition contracts.
type ComposeInput struct {
	Pages               []module.Page
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds the route table from the pages' declared patterns and
// returns a handler that serves every path through it.
func Compose(input ComposeInput) (http.Handler, error) {
	pages := make(map[string]module.Page, len(input.Pages))
	var routes []route.Route
	for _, page := range input.Pages {
		if page == nil {
			return nil, fmt.Errorf("page is nil")
		}
		id := strings.TrimSpace(page.ID())
		if id == "" {
			return nil, fmt.Errorf("page id is required")
		}
		if _, ok := pages[id]; ok {
			return nil, fmt.Errorf("page %q is registered twice", id)
		}
		pages[id] = page
		patterns := page.Routes()
		if len(patterns) == 0 {
			return nil, fmt.Errorf("page %q declares no routes", id)
		}
		for _, pattern := range patterns {
			routes = append(routes, route.Route{Pattern: pattern, Page: id})
		}
	}
	table, err := route.NewTable(routes)
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}
	return requireSameOriginMutations(input.RequestSchemePolicy)(router{table: table, pages: pages}), nil
}

type router struct {
	table *route.Table
	pages map[string]module.Page
}

// ServeHTTP resolves r against the table and hands it to the matched page.
func (rt router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	match := rt.table.Match(r.URL.EscapedPath())
	rt.pages[match.Route.Page].Serve(w, r, match.Params)
}

// requireSameOriginMutations rejects cross-origin mutations that either ride
// on the session cookie or would start a new session.
func requireSameOriginMutations(policy requestmeta.SchemePolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || (!hasSessionCookie(r) && !isCredentialPath(r)) {
				next.ServeHTTP(w, r)
				return
			}
			if !policy.SameOrigin(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func isCredentialPath(r *http.Request) bool {
	switch route.NormalizePath(r.URL.EscapedPath()) {
	case routepath.Login, routepath.Signup:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}

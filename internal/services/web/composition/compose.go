// Package composition wires the page registry into the routed app handler.
package composition

import (
	"net/http"

	webapp "github.com/louisbranch/deepthoughts/internal/services/web/app"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/modules"
)

// PageRegistry builds the page set from the thoughts gateway and shared
// dependencies.
type PageRegistry func(modules.Gateway, module.Dependencies) []module.Page

// ComposeInput describes the contracts needed to compose the app handler.
type ComposeInput struct {
	Gateway      modules.Gateway
	Dependencies module.Dependencies

	// Registry defaults to modules.DefaultPages.
	Registry PageRegistry
}

// ComposeAppHandler builds the routed handler for every page.
func ComposeAppHandler(input ComposeInput) (http.Handler, error) {
	registry := input.Registry
	if registry == nil {
		registry = modules.DefaultPages
	}
	deps := input.Dependencies
	if deps.ResolveViewer == nil {
		deps.ResolveViewer = func(*http.Request) module.Viewer { return module.Viewer{} }
	}
	return webapp.Compose(webapp.ComposeInput{
		Pages:               registry(input.Gateway, deps),
		RequestSchemePolicy: deps.RequestSchemePolicy,
	})
}

// Package notfound serves the catch-all page for unmatched paths.
package notfound

import (
	"net/http"

	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

// Page renders the NoMatch screen with a 404 status.
type Page struct {
	base modulehandler.Base
}

// New returns the fallback page.
func New(deps module.Dependencies) Page {
	return Page{base: modulehandler.NewBase(deps)}
}

// ID returns a stable page identifier.
func (Page) ID() string { return "notfound" }

// Routes returns the wildcard pattern.
func (Page) Routes() []string { return []string{route.Wildcard} }

// Serve renders the fallback for every method.
func (p Page) Serve(w http.ResponseWriter, r *http.Request, _ route.Params) {
	page := p.base.PageContext(w, r, "title.not_found")
	p.base.WritePage(w, r, page, http.StatusNotFound, webtemplates.NotFound(page.Loc))
}

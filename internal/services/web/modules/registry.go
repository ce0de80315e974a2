// Package modules assembles the page set served by the web service.
package modules

import (
	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/modules/home"
	"github.com/louisbranch/deepthoughts/internal/services/web/modules/notfound"
	"github.com/louisbranch/deepthoughts/internal/services/web/modules/profile"
	"github.com/louisbranch/deepthoughts/internal/services/web/modules/publicauth"
	"github.com/louisbranch/deepthoughts/internal/services/web/modules/thought"
)

// Gateway is the full thoughts API surface the default pages need.
type Gateway interface {
	home.Gateway
	profile.Gateway
	thought.Gateway
	publicauth.Gateway
}

var _ Gateway = thoughtsapi.Gateway{}

// DefaultPages returns every page in route-table order. The wildcard page is
// last.
func DefaultPages(gateway Gateway, deps module.Dependencies) []module.Page {
	pages := []module.Page{home.New(gateway, deps)}
	pages = append(pages, publicauth.Pages(gateway, deps)...)
	pages = append(pages,
		profile.New(gateway, deps),
		thought.New(gateway, deps),
		notfound.New(deps),
	)
	return pages
}

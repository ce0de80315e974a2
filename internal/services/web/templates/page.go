package templates

import (
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Viewer       module.Viewer
}

// DocumentTitle joins the page title with the app name.
func (p PageContext) DocumentTitle() string {
	appName := T(p.Loc, "app.name")
	if p.Title == "" {
		return appName
	}
	return p.Title + " | " + appName
}

// Package pagerender centralizes page rendering inside the app shell.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/deepthoughts/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

// NewContext resolves viewer and language for r. An explicit ?lang= choice
// is persisted on w.
func NewContext(w http.ResponseWriter, r *http.Request, deps module.Dependencies) webtemplates.PageContext {
	loc, lang := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	page := webtemplates.PageContext{
		Lang:   lang,
		Loc:    loc,
		Viewer: deps.Viewer(r),
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// WritePage renders content inside the shell with statusCode. The page is
// buffered so a render failure can still produce a clean 500.
func WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int, content templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if content == nil {
		content = templ.NopComponent
	}
	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), content)
	if err := webtemplates.Layout(page).Render(ctx, &buf); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err := w.Write(buf.Bytes())
	return err
}

// Package modulehandler provides a composable base for page handlers.
//
// Pages share viewer resolution, localization, shell rendering, form
// handling and error writing. Page handlers embed Base rather than repeating
// that scaffold.
package modulehandler

import (
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/httpx"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/pagerender"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/weberror"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

// maxFormBytes bounds page form bodies.
const maxFormBytes = 64 << 10

// Base carries the shared dependencies used by page handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from page dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// Dependencies returns the dependencies the base was built with.
func (b Base) Dependencies() module.Dependencies {
	return b.deps
}

// Viewer resolves the viewer for r.
func (b Base) Viewer(r *http.Request) module.Viewer {
	return b.deps.Viewer(r)
}

// Logger returns the configured logger.
func (b Base) Logger() *log.Logger {
	if b.deps.Logger != nil {
		return b.deps.Logger
	}
	return log.Default()
}

// PageContext resolves shell context for r with a localized title.
func (b Base) PageContext(w http.ResponseWriter, r *http.Request, titleKey string) webtemplates.PageContext {
	page := pagerender.NewContext(w, r, b.deps)
	page.Title = webtemplates.T(page.Loc, titleKey)
	return page
}

// WritePage renders content inside the shell.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int, content templ.Component) {
	if err := pagerender.WritePage(w, r, page, statusCode, content); err != nil {
		b.Logger().Printf("page render failed path=%s err=%v", requestPath(r), err)
	}
}

// WriteError renders a localized page error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WritePageError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.deps)
}

// RequireSignedIn redirects anonymous viewers to the login page and reports
// whether the handler may continue.
func (b Base) RequireSignedIn(w http.ResponseWriter, r *http.Request) bool {
	if b.Viewer(r).SignedIn() {
		return true
	}
	httpx.WriteRedirect(w, r, routepath.Login)
	return false
}

// ParseForm bounds and parses a posted form.
func (b Base) ParseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	return r.ParseForm()
}

// FormValue returns the trimmed posted value for key.
func FormValue(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.PostFormValue(key))
}

// Methods routes a request to the handler registered for its method. HEAD
// falls back to GET; anything else gets 405 with an Allow header.
type Methods struct {
	Get  http.HandlerFunc
	Post http.HandlerFunc
}

// ServeHTTP implements http.Handler.
func (m Methods) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case (r.Method == http.MethodGet || r.Method == http.MethodHead) && m.Get != nil:
		m.Get(w, r)
	case r.Method == http.MethodPost && m.Post != nil:
		m.Post(w, r)
	default:
		httpx.MethodNotAllowed(w, m.allow()...)
	}
}

func (m Methods) allow() []string {
	allow := make([]string, 0, 3)
	if m.Get != nil {
		allow = append(allow, http.MethodGet, http.MethodHead)
	}
	if m.Post != nil {
		allow = append(allow, http.MethodPost)
	}
	return allow
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return "-"
	}
	return r.URL.Path
}

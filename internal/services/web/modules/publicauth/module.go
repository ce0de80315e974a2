// Package publicauth serves the login, signup and logout endpoints.
package publicauth

import (
	"context"
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

// Gateway is the slice of the thoughts API that issues tokens.
type Gateway interface {
	Login(ctx context.Context, email, password string) (thoughtsapi.Auth, error)
	AddUser(ctx context.Context, username, email, password string) (thoughtsapi.Auth, error)
}

// Pages returns the login, signup and logout pages sharing one handler set.
func Pages(gateway Gateway, deps module.Dependencies) []module.Page {
	h := handlers{Base: modulehandler.NewBase(deps), gateway: gateway}
	return []module.Page{
		authPage{id: "login", pattern: routepath.Login, mode: webtemplates.AuthLogin, handlers: h},
		authPage{id: "signup", pattern: routepath.Signup, mode: webtemplates.AuthSignup, handlers: h},
		logoutPage{handlers: h},
	}
}

type authPage struct {
	id       string
	pattern  string
	mode     webtemplates.AuthMode
	handlers handlers
}

func (p authPage) ID() string { return p.id }

func (p authPage) Routes() []string { return []string{p.pattern} }

func (p authPage) Serve(w http.ResponseWriter, r *http.Request, _ route.Params) {
	modulehandler.Methods{
		Get:  func(w http.ResponseWriter, r *http.Request) { p.handlers.handleForm(w, r, p.mode) },
		Post: func(w http.ResponseWriter, r *http.Request) { p.handlers.handleSubmit(w, r, p.mode) },
	}.ServeHTTP(w, r)
}

type logoutPage struct {
	handlers handlers
}

func (logoutPage) ID() string { return "logout" }

func (logoutPage) Routes() []string { return []string{routepath.Logout} }

func (p logoutPage) Serve(w http.ResponseWriter, r *http.Request, _ route.Params) {
	modulehandler.Methods{Post: p.handlers.handleLogout}.ServeHTTP(w, r)
}

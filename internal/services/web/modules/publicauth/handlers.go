package publicauth

import (
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/authctx"
	apperrors "github.com/louisbranch/deepthoughts/internal/services/web/platform/errors"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/httpx"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	gateway Gateway
}

type credentials struct {
	username string
	email    string
	password string
}

func (c credentials) complete(mode webtemplates.AuthMode) bool {
	if c.email == "" || c.password == "" {
		return false
	}
	return mode != webtemplates.AuthSignup || c.username != ""
}

func (h handlers) handleForm(w http.ResponseWriter, r *http.Request, mode webtemplates.AuthMode) {
	if h.Viewer(r).SignedIn() {
		httpx.WriteRedirect(w, r, routepath.Root)
		return
	}
	h.render(w, r, mode, http.StatusOK, credentials{}, "")
}

func (h handlers) handleSubmit(w http.ResponseWriter, r *http.Request, mode webtemplates.AuthMode) {
	if err := h.ParseForm(w, r); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	creds := credentials{
		username: modulehandler.FormValue(r, "username"),
		email:    modulehandler.FormValue(r, "email"),
		// Passwords are taken verbatim.
		password: r.PostFormValue("password"),
	}
	if !creds.complete(mode) {
		h.render(w, r, mode, http.StatusBadRequest, creds, "auth.fields_required")
		return
	}

	auth, err := h.authenticate(r, mode, creds)
	if err != nil {
		if status, rejected := rejection(err); rejected {
			h.Logger().Printf("auth rejected mode=%s status=%d err=%v", mode, status, err)
			h.render(w, r, mode, status, creds, failureKey(mode))
			return
		}
		h.WriteError(w, r, err)
		return
	}

	h.dropScope(r, authctx.TokenFromContext(r.Context()))
	sessioncookie.Write(w, r, auth.Token, h.Dependencies().RequestSchemePolicy)
	httpx.WriteRedirect(w, r, routepath.Root)
}

func (h handlers) authenticate(r *http.Request, mode webtemplates.AuthMode, creds credentials) (thoughtsapi.Auth, error) {
	if mode == webtemplates.AuthSignup {
		return h.gateway.AddUser(r.Context(), creds.username, creds.email, creds.password)
	}
	return h.gateway.Login(r.Context(), creds.email, creds.password)
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.dropScope(r, authctx.TokenFromContext(r.Context()))
	sessioncookie.Clear(w, r, h.Dependencies().RequestSchemePolicy)
	httpx.WriteRedirect(w, r, routepath.Root)
}

// dropScope removes the cached responses of the identity behind token.
func (h handlers) dropScope(r *http.Request, token string) {
	client := h.Dependencies().Client
	if client == nil || token == "" {
		return
	}
	if err := client.InvalidateScope(r.Context(), token); err != nil {
		h.Logger().Printf("cache scope invalidation failed path=%s err=%v", r.URL.Path, err)
	}
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, mode webtemplates.AuthMode, statusCode int, creds credentials, errorKey string) {
	titleKey := "title.login"
	if mode == webtemplates.AuthSignup {
		titleKey = "title.signup"
	}
	page := h.PageContext(w, r, titleKey)
	view := webtemplates.AuthView{Mode: mode, Username: creds.username, Email: creds.email}
	if errorKey != "" {
		view.Error = webtemplates.T(page.Loc, errorKey)
	}
	h.WritePage(w, r, page, statusCode, webtemplates.AuthPage(page.Loc, view))
}

// rejection reports whether the upstream refused the submitted credentials
// rather than failing, and the status the form is re-rendered with.
func rejection(err error) (int, bool) {
	switch status := apperrors.HTTPStatus(err); status {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return status, true
	}
	if len(apperrors.UpstreamMessages(err)) > 0 {
		return http.StatusBadRequest, true
	}
	return 0, false
}

func failureKey(mode webtemplates.AuthMode) string {
	if mode == webtemplates.AuthSignup {
		return "auth.signup_failed"
	}
	return "auth.login_failed"
}

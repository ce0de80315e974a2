package home

import (
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/httpx"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	gateway Gateway
}

func (h handlers) handleFeed(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "")
}

func (h handlers) handleAddThought(w http.ResponseWriter, r *http.Request) {
	if !h.RequireSignedIn(w, r) {
		return
	}
	if err := h.ParseForm(w, r); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	text := modulehandler.FormValue(r, "thoughtText")
	if !thoughtsapi.ValidText(text) {
		h.render(w, r, http.StatusBadRequest, "thought.invalid")
		return
	}
	if _, err := h.gateway.AddThought(r.Context(), text); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

// render loads the feed and, for viewers, their friends. A failed friends
// lookup only hides the friend list.
func (h handlers) render(w http.ResponseWriter, r *http.Request, statusCode int, formErrorKey string) {
	ctx := r.Context()
	thoughts, err := h.gateway.Thoughts(ctx, "")
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(w, r, "title.home")
	view := webtemplates.HomeView{Thoughts: thoughts, SignedIn: page.Viewer.SignedIn()}
	if view.SignedIn {
		me, err := h.gateway.Me(ctx, true)
		if err != nil {
			h.Logger().Printf("home friends unavailable username=%s err=%v", page.Viewer.Username, err)
		} else {
			view.Me = me
		}
	}
	if formErrorKey != "" {
		view.FormError = webtemplates.T(page.Loc, formErrorKey)
	}
	h.WritePage(w, r, page, statusCode, webtemplates.HomePage(page.Loc, view))
}

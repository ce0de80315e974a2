package thought

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

func (h handlers) handleThought(w http.ResponseWriter, r *http.Request, thoughtID string) {
	h.render(w, r, thoughtID, http.StatusOK, "")
}

func (h handlers) handleAddReaction(w http.ResponseWriter, r *http.Request, thoughtID string) {
	if !h.RequireSignedIn(w, r) {
		return
	}
	if err := h.ParseForm(w, r); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	body := modulehandler.FormValue(r, "reactionBody")
	if !thoughtsapi.ValidText(body) {
		h.render(w, r, thoughtID, http.StatusBadRequest, "reaction.invalid")
		return
	}
	if err := h.gateway.AddReaction(r.Context(), thoughtID, body); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Thought(thoughtID))
}

func (h handlers) render(w http.ResponseWriter, r *http.Request, thoughtID string, statusCode int, formErrorKey string) {
	thought, err := h.gateway.Thought(r.Context(), thoughtID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(w, r, "title.thought")
	view := webtemplates.ThoughtView{Thought: thought, SignedIn: page.Viewer.SignedIn()}
	if formErrorKey != "" {
		view.FormError = webtemplates.T(page.Loc, formErrorKey)
	}
	h.WritePage(w, r, page, statusCode, webtemplates.ThoughtPage(page.Loc, view))
}

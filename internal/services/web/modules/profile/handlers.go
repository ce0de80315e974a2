package profile

import (
	"net/http"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	apperrors "github.com/louisbranch/deepthoughts/internal/services/web/platform/errors"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/httpx"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	gateway Gateway
}

func (h handlers) handleOwn(w http.ResponseWriter, r *http.Request) {
	if !h.Viewer(r).SignedIn() {
		page := h.PageContext(w, r, "title.profile")
		h.WritePage(w, r, page, http.StatusOK, webtemplates.LoginRequired(page.Loc))
		return
	}
	h.renderOwn(w, r, http.StatusOK, "")
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
		h.renderOwn(w, r, http.StatusBadRequest, "thought.invalid")
		return
	}
	if _, err := h.gateway.AddThought(r.Context(), text); err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Profile)
}

func (h handlers) handleUser(w http.ResponseWriter, r *http.Request, username string) {
	if h.isViewer(r, username) {
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	h.renderUser(w, r, username, http.StatusOK, "")
}

func (h handlers) handleAddFriend(w http.ResponseWriter, r *http.Request, username string) {
	if !h.RequireSignedIn(w, r) {
		return
	}
	if h.isViewer(r, username) {
		httpx.WriteRedirect(w, r, routepath.Profile)
		return
	}
	friend, err := h.gateway.User(r.Context(), username)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.gateway.AddFriend(r.Context(), friend.ID); err != nil {
		if apperrors.HTTPStatus(err) == http.StatusBadRequest {
			h.renderUser(w, r, username, http.StatusBadRequest, "profile.add_friend_failed")
			return
		}
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.UserProfile(username))
}

func (h handlers) isViewer(r *http.Request, username string) bool {
	viewer := h.Viewer(r)
	return viewer.SignedIn() && viewer.Username == username
}

func (h handlers) renderOwn(w http.ResponseWriter, r *http.Request, statusCode int, formErrorKey string) {
	me, err := h.gateway.Me(r.Context(), false)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(w, r, "title.profile")
	view := webtemplates.ProfileView{Profile: me, Own: true}
	if formErrorKey != "" {
		view.FormError = webtemplates.T(page.Loc, formErrorKey)
	}
	h.WritePage(w, r, page, statusCode, webtemplates.ProfilePage(page.Loc, view))
}

func (h handlers) renderUser(w http.ResponseWriter, r *http.Request, username string, statusCode int, friendErrorKey string) {
	profile, err := h.gateway.User(r.Context(), username)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.PageContext(w, r, "title.profile")
	view := webtemplates.ProfileView{Profile: profile, CanAddFriend: page.Viewer.SignedIn()}
	if friendErrorKey != "" {
		view.FriendError = webtemplates.T(page.Loc, friendErrorKey)
	}
	h.WritePage(w, r, page, statusCode, webtemplates.ProfilePage(page.Loc, view))
}

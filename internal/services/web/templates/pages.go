package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// HomeView is the data behind the home feed.
type HomeView struct {
	Thoughts  []Thought
	SignedIn  bool
	Me        Profile
	FormError string
}

// HomePage renders the feed, with the thought form and friends for viewers.
func HomePage(loc Localizer, view HomeView) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.tag("div", "class", "flex-row justify-space-between")
		if view.SignedIn {
			h.tag("div", "class", "col-12 mb-3")
			h.render(ctx, ThoughtForm(loc, routepath.Root, view.FormError))
			h.end("div")
		}
		feedClass := "col-12 mb-3"
		if view.SignedIn {
			feedClass = "col-12 col-lg-8 mb-3"
		}
		h.tag("div", "class", feedClass)
		h.render(ctx, ThoughtList(loc, T(loc, "home.feed_heading"), view.Thoughts))
		h.end("div")
		if view.SignedIn && view.Me.Username != "" {
			h.tag("div", "class", "col-12 col-lg-3 mb-3")
			h.render(ctx, FriendList(loc, view.Me.Username, view.Me.FriendCount, view.Me.Friends))
			h.end("div")
		}
		h.end("div")
	})
}

// ProfileView is the data behind a profile page.
type ProfileView struct {
	Profile      Profile
	Own          bool
	CanAddFriend bool
	FriendError  string
	FormError    string
}

// ProfilePage renders a user's thoughts and friends.
func ProfilePage(loc Localizer, view ProfileView) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.tag("div", "class", "flex-row mb-3")
		heading := T(loc, "profile.viewing", view.Profile.Username)
		if view.Own {
			heading = T(loc, "profile.viewing_own")
		}
		h.element("h2", heading, "class", "bg-dark text-secondary p-3 display-inline-block")
		if view.CanAddFriend {
			h.tag("form", "method", "post", "action", routepath.UserProfile(view.Profile.Username), "class", "ml-auto")
			h.element("button", T(loc, "profile.add_friend"), "type", "submit", "class", "btn")
			h.end("form")
		}
		h.end("div")
		if view.FriendError != "" {
			h.element("p", view.FriendError, "class", "error-text")
		}

		h.tag("div", "class", "flex-row justify-space-between mb-3")
		h.tag("div", "class", "col-12 mb-3 col-lg-8")
		listHeading := T(loc, "profile.thoughts", view.Profile.Username)
		if view.Own {
			listHeading = T(loc, "profile.own_thoughts")
		}
		h.render(ctx, ThoughtList(loc, listHeading, view.Profile.Thoughts))
		h.end("div")
		h.tag("div", "class", "col-12 col-lg-3 mb-3")
		h.render(ctx, FriendList(loc, view.Profile.Username, view.Profile.FriendCount, view.Profile.Friends))
		h.raw("</div></div>")
		if view.Own {
			h.render(ctx, ThoughtForm(loc, routepath.Profile, view.FormError))
		}
	})
}

// LoginRequired tells anonymous visitors of /profile to sign in.
func LoginRequired(loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.element("h4", T(loc, "profile.login_required"))
	})
}

// ThoughtView is the data behind a single thought page.
type ThoughtView struct {
	Thought   Thought
	SignedIn  bool
	FormError string
}

// ThoughtPage renders one thought with its reactions.
func ThoughtPage(loc Localizer, view ThoughtView) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.tag("div", "class", "card mb-3")
		h.tag("p", "class", "card-header")
		h.element("a", view.Thought.Username, "href", routepath.UserProfile(view.Thought.Username), "class", "text-light")
		h.text(" " + T(loc, "thought.on", view.Thought.CreatedAt))
		h.end("p")
		h.tag("div", "class", "card-body")
		h.element("p", view.Thought.Text)
		h.raw("</div></div>")
		h.render(ctx, ReactionList(loc, view.Thought.Reactions))
		if view.SignedIn {
			h.render(ctx, ReactionForm(loc, routepath.Thought(view.Thought.ID), view.FormError))
		}
	})
}

// AuthMode selects the login or signup variant of AuthPage.
type AuthMode string

const (
	AuthLogin  AuthMode = "login"
	AuthSignup AuthMode = "signup"
)

// AuthView is the data behind the login and signup forms.
type AuthView struct {
	Mode     AuthMode
	Username string
	Email    string
	Error    string
}

// AuthPage renders the login or signup form.
func AuthPage(loc Localizer, view AuthView) templ.Component {
	return component(func(_ context.Context, h *html) {
		action, titleKey := routepath.Login, "title.login"
		if view.Mode == AuthSignup {
			action, titleKey = routepath.Signup, "title.signup"
		}
		h.tag("div", "class", "flex-row justify-center mb-4")
		h.tag("div", "class", "col-12 col-md-6")
		h.tag("div", "class", "card")
		h.element("h4", T(loc, titleKey), "class", "card-header")
		h.tag("div", "class", "card-body")
		h.tag("form", "method", "post", "action", action)
		if view.Mode == AuthSignup {
			h.tag("input", "class", "form-input", "name", "username", "type", "text", "placeholder", T(loc, "auth.username"), "value", view.Username, "required", "required")
		}
		h.tag("input", "class", "form-input", "name", "email", "type", "email", "placeholder", T(loc, "auth.email"), "value", view.Email, "required", "required")
		h.tag("input", "class", "form-input", "name", "password", "type", "password", "placeholder", T(loc, "auth.password"), "required", "required")
		h.element("button", T(loc, "form.submit"), "type", "submit", "class", "btn d-block w-100")
		h.end("form")
		if view.Error != "" {
			h.element("div", view.Error, "class", "error-text")
		}
		h.raw("</div></div></div></div>")
	})
}

// NotFound renders the fallback page content.
func NotFound(loc Localizer) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.tag("div", "class", "not-found")
		h.element("h2", T(loc, "not_found.heading"))
		h.element("a", T(loc, "not_found.back"), "href", routepath.Root, "class", "btn")
		h.end("div")
	})
}

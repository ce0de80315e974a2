package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// ThoughtList renders thoughts as cards linking to their pages.
func ThoughtList(loc Localizer, heading string, thoughts []Thought) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.element("h3", heading)
		if len(thoughts) == 0 {
			h.element("p", T(loc, "home.no_thoughts"), "class", "empty")
			return
		}
		for _, thought := range thoughts {
			h.tag("div", "class", "card mb-3")
			h.tag("p", "class", "card-header")
			h.element("a", thought.Username, "href", routepath.UserProfile(thought.Username), "class", "text-light")
			h.text(" ")
			h.text(T(loc, "thought.on", thought.CreatedAt))
			h.end("p")
			h.tag("div", "class", "card-body")
			h.tag("a", "href", routepath.Thought(thought.ID))
			h.element("p", thought.Text)
			h.element("p", reactionSummary(loc, thought.ReactionCount), "class", "mb-0")
			h.end("a")
			h.raw("</div></div>")
		}
	})
}

func reactionSummary(loc Localizer, count int) string {
	if count == 0 {
		return T(loc, "thought.start_discussion")
	}
	return T(loc, "thought.reactions", count)
}

// ThoughtForm renders the add-thought form posting to action.
func ThoughtForm(loc Localizer, action, formError string) templ.Component {
	return textForm(loc, action, "thoughtText", T(loc, "thought.form.placeholder"), formError)
}

// ReactionForm renders the add-reaction form posting to action.
func ReactionForm(loc Localizer, action, formError string) templ.Component {
	return textForm(loc, action, "reactionBody", T(loc, "reaction.placeholder"), formError)
}

func textForm(loc Localizer, action, field, placeholder, formError string) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.tag("div", "class", "mb-3")
		h.element("p", T(loc, "thought.form.count", 0), "class", "m-0")
		h.tag("form", "method", "post", "action", action, "class", "flex-row justify-center justify-space-between-md align-stretch")
		h.tag("textarea", "name", field, "placeholder", placeholder, "maxlength", strconv.Itoa(MaxThoughtLength), "required", "required", "class", "form-input col-12 col-md-9")
		h.end("textarea")
		h.element("button", T(loc, "form.submit"), "type", "submit", "class", "btn col-12 col-md-3")
		h.end("form")
		if formError != "" {
			h.element("p", formError, "class", "error-text")
		}
		h.end("div")
	})
}

// FriendList renders a user's friends as profile links.
func FriendList(loc Localizer, username string, friendCount int, friends []Friend) templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(friends) == 0 {
			h.element("p", T(loc, "friends.none", username), "class", "bg-dark text-light p-3")
			return
		}
		h.tag("div")
		h.element("h5", T(loc, "friends.heading", username, friendCount))
		for _, friend := range friends {
			h.element("a", friend.Username, "href", routepath.UserProfile(friend.Username), "class", "btn w-100 display-block mb-2")
		}
		h.end("div")
	})
}

// ReactionList renders the replies to a thought.
func ReactionList(loc Localizer, reactions []Reaction) templ.Component {
	return component(func(_ context.Context, h *html) {
		if len(reactions) == 0 {
			return
		}
		h.tag("div", "class", "card mb-3")
		h.element("div", T(loc, "reaction.heading"), "class", "card-header")
		h.tag("div", "class", "card-body")
		for _, reaction := range reactions {
			h.tag("p", "class", "pill mb-3")
			h.text(reaction.Body + " // ")
			h.element("a", reaction.Username, "href", routepath.UserProfile(reaction.Username))
			h.text(" " + reaction.CreatedAt)
			h.end("p")
		}
		h.raw("</div></div>")
	})
}

package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("en-US")

	message.SetString(lang, "app.name", "Deep Thoughts")
	message.SetString(lang, "app.tagline", "Meet your new social network for real thoughts.")
	message.SetString(lang, "footer.credit", "Made with ❤️ by the Deep Thoughts team.")

	// Navigation
	message.SetString(lang, "nav.me", "Me")
	message.SetString(lang, "nav.logout", "Logout")
	message.SetString(lang, "nav.login", "Login")
	message.SetString(lang, "nav.signup", "Signup")
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")

	// Home
	message.SetString(lang, "title.home", "Home")
	message.SetString(lang, "home.feed_heading", "Some Feed for Thought(s)...")
	message.SetString(lang, "home.no_thoughts", "No Thoughts Yet")
	message.SetString(lang, "thought.form.placeholder", "Here's a new thought...")
	message.SetString(lang, "thought.form.count", "Character Count: %d/280")
	message.SetString(lang, "thought.on", "thought on %s")
	message.SetString(lang, "thought.reactions", "Reactions: %d || Click to react and join the discussion!")
	message.SetString(lang, "thought.start_discussion", "Start the discussion!")
	message.SetString(lang, "thought.invalid", "A thought needs between 1 and 280 characters.")
	message.SetString(lang, "reaction.invalid", "A reaction needs between 1 and 280 characters.")
	message.SetString(lang, "form.submit", "Submit")

	// Friends
	message.SetString(lang, "friends.none", "%s, make some friends!")
	message.SetString(lang, "friends.heading", "%s's %d friends")

	// Profile
	message.SetString(lang, "title.profile", "Profile")
	message.SetString(lang, "profile.viewing", "Viewing %s's profile.")
	message.SetString(lang, "profile.viewing_own", "Viewing your profile.")
	message.SetString(lang, "profile.thoughts", "%s's thoughts...")
	message.SetString(lang, "profile.own_thoughts", "Your thoughts...")
	message.SetString(lang, "profile.add_friend", "Add Friend")
	message.SetString(lang, "profile.add_friend_failed", "Could not add this friend.")
	message.SetString(lang, "profile.login_required", "You need to be logged in to see this. Use the navigation links above to sign up or log in!")

	// Single thought
	message.SetString(lang, "title.thought", "Thought")
	message.SetString(lang, "reaction.placeholder", "Leave a reaction to this thought...")
	message.SetString(lang, "reaction.heading", "Reactions")

	// Auth
	message.SetString(lang, "title.login", "Login")
	message.SetString(lang, "title.signup", "Sign Up")
	message.SetString(lang, "auth.username", "Your username")
	message.SetString(lang, "auth.email", "Your email")
	message.SetString(lang, "auth.password", "******")
	message.SetString(lang, "auth.login_failed", "Login failed")
	message.SetString(lang, "auth.signup_failed", "Signup failed")
	message.SetString(lang, "auth.fields_required", "Every field is required.")

	// Errors
	message.SetString(lang, "title.not_found", "Not Found")
	message.SetString(lang, "not_found.heading", "Oops, we couldn't find that page.")
	message.SetString(lang, "not_found.back", "Back to home")
	message.SetString(lang, "title.error", "Something went wrong")
	message.SetString(lang, "error.status", "Error %d")
	message.SetString(lang, "error.unavailable", "The thought service is unavailable. Please try again in a moment.")
	message.SetString(lang, "error.unauthorized", "Your session has ended. Please log in again.")
	message.SetString(lang, "error.generic", "Something went wrong. Please try again.")
}

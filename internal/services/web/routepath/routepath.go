// Package routepath stores canonical HTTP paths for web pages.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Login           = "/login"
	Signup          = "/signup"
	Logout          = "/logout"
	Health          = "/up"
	StaticPrefix    = "/static/"
	Profile         = "/profile"
	ProfilePrefix   = "/profile/"
	ProfilePattern  = ProfilePrefix + "{username}"
	ThoughtPrefix   = "/thought/"
	ThoughtPattern  = ThoughtPrefix + "{id}"
	Wildcard        = "*"
	UsernameParam   = "username"
	ThoughtIDParam  = "id"
	GraphQLEndpoint = "/graphql"
)

// UserProfile returns the profile route for username, or the viewer's own
// profile route when username is blank.
func UserProfile(username string) string {
	username = strings.TrimSpace(username)
	if username == "" {
		return Profile
	}
	return ProfilePrefix + escapeSegment(username)
}

// Thought returns the single-thought route.
func Thought(thoughtID string) string {
	return ThoughtPrefix + escapeSegment(thoughtID)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

package thoughtsapi

import (
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// MaxTextLength bounds thought and reaction bodies, as the API enforces.
const MaxTextLength = 280

// ValidText reports whether text is a non-blank body within MaxTextLength.
func ValidText(text string) bool {
	text = strings.TrimSpace(text)
	return text != "" && utf8.RuneCountInString(text) <= MaxTextLength
}

// Thought is one post.
type Thought struct {
	ID            string
	Text          string
	Username      string
	CreatedAt     string
	ReactionCount int
	Reactions     []Reaction
}

// Reaction is a reply to a thought.
type Reaction struct {
	ID        string
	Body      string
	Username  string
	CreatedAt string
}

// Friend is a user referenced from a friend list.
type Friend struct {
	ID       string
	Username string
}

// Profile is a user with their friends and thoughts.
type Profile struct {
	ID          string
	Username    string
	Email       string
	FriendCount int
	Friends     []Friend
	Thoughts    []Thought
}

// Auth is the token and user returned by login and signup.
type Auth struct {
	Token    string
	UserID   string
	Username string
}

func thoughtFrom(value gjson.Result) Thought {
	thought := Thought{
		ID:            value.Get("_id").String(),
		Text:          value.Get("thoughtText").String(),
		Username:      value.Get("username").String(),
		CreatedAt:     value.Get("createdAt").String(),
		ReactionCount: int(value.Get("reactionCount").Int()),
	}
	for _, item := range value.Get("reactions").Array() {
		thought.Reactions = append(thought.Reactions, Reaction{
			ID:        item.Get("_id").String(),
			Body:      item.Get("reactionBody").String(),
			Username:  item.Get("username").String(),
			CreatedAt: item.Get("createdAt").String(),
		})
	}
	return thought
}

func thoughtsFrom(value gjson.Result) []Thought {
	items := value.Array()
	thoughts := make([]Thought, 0, len(items))
	for _, item := range items {
		thoughts = append(thoughts, thoughtFrom(item))
	}
	return thoughts
}

func profileFrom(value gjson.Result) Profile {
	profile := Profile{
		ID:          value.Get("_id").String(),
		Username:    value.Get("username").String(),
		Email:       value.Get("email").String(),
		FriendCount: int(value.Get("friendCount").Int()),
		Thoughts:    thoughtsFrom(value.Get("thoughts")),
	}
	for _, item := range value.Get("friends").Array() {
		profile.Friends = append(profile.Friends, Friend{
			ID:       item.Get("_id").String(),
			Username: item.Get("username").String(),
		})
	}
	for idx := range profile.Thoughts {
		if profile.Thoughts[idx].Username == "" {
			profile.Thoughts[idx].Username = profile.Username
		}
	}
	return profile
}

func authFrom(value gjson.Result) Auth {
	return Auth{
		Token:    value.Get("token").String(),
		UserID:   value.Get("user._id").String(),
		Username: value.Get("user.username").String(),
	}
}

package templates

import "github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"

// View models rendered by the page components.
type (
	Thought  = thoughtsapi.Thought
	Reaction = thoughtsapi.Reaction
	Friend   = thoughtsapi.Friend
	Profile  = thoughtsapi.Profile
)

// MaxThoughtLength bounds thought and reaction bodies.
const MaxThoughtLength = thoughtsapi.MaxTextLength

package thoughtsapi

import "github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"

const thoughtFields = `
    _id
    thoughtText
    createdAt
    username
    reactionCount
    reactions {
      _id
      createdAt
      username
      reactionBody
    }`

var (
	// QueryThoughts lists thoughts, optionally for one author.
	QueryThoughts = graphql.Operation{Name: "thoughts", Query: `query thoughts($username: String) {
  thoughts(username: $username) {` + thoughtFields + `
  }
}`}

	// QueryThought loads one thought with its reactions.
	QueryThought = graphql.Operation{Name: "thought", Query: `query thought($id: ID!) {
  thought(_id: $id) {` + thoughtFields + `
  }
}`}

	// QueryUser loads another user's profile.
	QueryUser = graphql.Operation{Name: "user", Query: `query user($username: String!) {
  user(username: $username) {
    _id
    username
    email
    friendCount
    friends {
      _id
      username
    }
    thoughts {
      _id
      thoughtText
      createdAt
      reactionCount
    }
  }
}`}

	// QueryMe loads the signed-in user's profile with thoughts.
	QueryMe = graphql.Operation{Name: "me", Query: `query me {
  me {
    _id
    username
    email
    friendCount
    thoughts {` + thoughtFields + `
    }
    friends {
      _id
      username
    }
  }
}`}

	// QueryMeBasic loads the signed-in user's friends only.
	QueryMeBasic = graphql.Operation{Name: "me", Query: `query me {
  me {
    _id
    username
    email
    friendCount
    friends {
      _id
      username
    }
  }
}`}

	// MutationLogin exchanges credentials for a token.
	MutationLogin = graphql.Operation{Name: "login", Query: `mutation login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    token
    user {
      _id
      username
    }
  }
}`}

	// MutationAddUser creates an account and returns its token.
	MutationAddUser = graphql.Operation{Name: "addUser", Query: `mutation addUser($username: String!, $email: String!, $password: String!) {
  addUser(username: $username, email: $email, password: $password) {
    token
    user {
      _id
      username
    }
  }
}`}

	// MutationAddThought posts a thought as the signed-in user.
	MutationAddThought = graphql.Operation{Name: "addThought", Query: `mutation addThought($thoughtText: String!) {
  addThought(thoughtText: $thoughtText) {
    _id
    thoughtText
    createdAt
    username
    reactionCount
  }
}`}

	// MutationAddReaction replies to a thought.
	MutationAddReaction = graphql.Operation{Name: "addReaction", Query: `mutation addReaction($thoughtId: ID!, $reactionBody: String!) {
  addReaction(thoughtId: $thoughtId, reactionBody: $reactionBody) {
    _id
    reactionCount
  }
}`}

	// MutationAddFriend adds a friend to the signed-in user.
	MutationAddFriend = graphql.Operation{Name: "addFriend", Query: `mutation addFriend($id: ID!) {
  addFriend(friendId: $id) {
    _id
    username
    friendCount
  }
}`}
)

package thoughtsapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
	apperrors "github.com/louisbranch/deepthoughts/internal/services/web/platform/errors"
	"github.com/tidwall/gjson"
)

// Executor runs one GraphQL operation.
type Executor interface {
	Execute(ctx context.Context, op graphql.Operation, vars graphql.Variables) (graphql.Response, error)
}

// Gateway maps the API's operations onto typed calls.
type Gateway struct {
	client Executor
}

// NewGateway wraps client.
func NewGateway(client Executor) Gateway {
	return Gateway{client: client}
}

func (g Gateway) execute(ctx context.Context, op graphql.Operation, vars graphql.Variables) (graphql.Response, error) {
	if g.client == nil {
		return graphql.Response{}, apperrors.E(apperrors.KindUnavailable, "thoughts api client is not configured")
	}
	resp, err := g.client.Execute(ctx, op, vars)
	if err != nil {
		return resp, fmt.Errorf("%s: %w", op.Name, err)
	}
	return resp, nil
}

// Thoughts lists thoughts, newest first as the API orders them. A blank
// username lists everyone's.
func (g Gateway) Thoughts(ctx context.Context, username string) ([]Thought, error) {
	vars := graphql.Variables{}
	if username = strings.TrimSpace(username); username != "" {
		vars["username"] = username
	}
	resp, err := g.execute(ctx, QueryThoughts, vars)
	if err != nil {
		return nil, err
	}
	return thoughtsFrom(resp.Get("thoughts")), nil
}

// Thought loads one thought.
func (g Gateway) Thought(ctx context.Context, thoughtID string) (Thought, error) {
	resp, err := g.execute(ctx, QueryThought, graphql.Variables{"id": thoughtID})
	if err != nil {
		return Thought{}, err
	}
	value := resp.Get("thought")
	if missing(value) {
		return Thought{}, apperrors.E(apperrors.KindNotFound, "thought not found")
	}
	return thoughtFrom(value), nil
}

// User loads the profile for username.
func (g Gateway) User(ctx context.Context, username string) (Profile, error) {
	resp, err := g.execute(ctx, QueryUser, graphql.Variables{"username": username})
	if err != nil {
		return Profile{}, err
	}
	value := resp.Get("user")
	if missing(value) {
		return Profile{}, apperrors.E(apperrors.KindNotFound, "user not found")
	}
	return profileFrom(value), nil
}

// Me loads the signed-in user's profile. basic skips their thoughts.
func (g Gateway) Me(ctx context.Context, basic bool) (Profile, error) {
	op := QueryMe
	if basic {
		op = QueryMeBasic
	}
	resp, err := g.execute(ctx, op, nil)
	if err != nil {
		return Profile{}, err
	}
	value := resp.Get("me")
	if missing(value) {
		return Profile{}, apperrors.E(apperrors.KindUnauthorized, "not signed in")
	}
	return profileFrom(value), nil
}

// Login exchanges credentials for a token.
func (g Gateway) Login(ctx context.Context, email, password string) (Auth, error) {
	resp, err := g.execute(ctx, MutationLogin, graphql.Variables{"email": email, "password": password})
	if err != nil {
		return Auth{}, err
	}
	return requireToken(authFrom(resp.Get("login")))
}

// AddUser signs up and returns the new account's token.
func (g Gateway) AddUser(ctx context.Context, username, email, password string) (Auth, error) {
	resp, err := g.execute(ctx, MutationAddUser, graphql.Variables{"username": username, "email": email, "password": password})
	if err != nil {
		return Auth{}, err
	}
	return requireToken(authFrom(resp.Get("addUser")))
}

func missing(value gjson.Result) bool {
	return !value.Exists() || value.Type == gjson.Null
}

func requireToken(auth Auth) (Auth, error) {
	if strings.TrimSpace(auth.Token) == "" {
		return Auth{}, apperrors.E(apperrors.KindUnknown, "auth response carried no token")
	}
	return auth, nil
}

// AddThought posts text as the signed-in user.
func (g Gateway) AddThought(ctx context.Context, text string) (Thought, error) {
	resp, err := g.execute(ctx, MutationAddThought, graphql.Variables{"thoughtText": text})
	if err != nil {
		return Thought{}, err
	}
	return thoughtFrom(resp.Get("addThought")), nil
}

// AddReaction replies to thoughtID.
func (g Gateway) AddReaction(ctx context.Context, thoughtID, body string) error {
	_, err := g.execute(ctx, MutationAddReaction, graphql.Variables{"thoughtId": thoughtID, "reactionBody": body})
	return err
}

// AddFriend befriends friendID.
func (g Gateway) AddFriend(ctx context.Context, friendID string) error {
	_, err := g.execute(ctx, MutationAddFriend, graphql.Variables{"id": friendID})
	return err
}

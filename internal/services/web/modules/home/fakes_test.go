package home

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
)

type fakeGateway struct {
	thoughts    []thoughtsapi.Thought
	thoughtsErr error
	me          thoughtsapi.Profile
	meErr       error
	addErr      error
	added       []string
}

func (f *fakeGateway) Thoughts(context.Context, string) ([]thoughtsapi.Thought, error) {
	return f.thoughts, f.thoughtsErr
}

func (f *fakeGateway) Me(context.Context, bool) (thoughtsapi.Profile, error) {
	return f.me, f.meErr
}

func (f *fakeGateway) AddThought(_ context.Context, text string) (thoughtsapi.Thought, error) {
	if f.addErr != nil {
		return thoughtsapi.Thought{}, f.addErr
	}
	f.added = append(f.added, text)
	return thoughtsapi.Thought{ID: "new", Text: text}, nil
}

func depsFor(username string) module.Dependencies {
	return module.Dependencies{
		ResolveViewer: func(*http.Request) module.Viewer { return module.Viewer{Username: username} },
	}
}

func formBody(values url.Values) *strings.Reader {
	return strings.NewReader(values.Encode())
}

package home

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/graphql"
	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
)

func serve(page Page, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	page.Serve(rr, req, route.Params{})
	return rr
}

func postThought(text string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", formBody(url.Values{"thoughtText": {text}}))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPageContract(t *testing.T) {
	t.Parallel()

	page := New(&fakeGateway{}, depsFor(""))
	if page.ID() != "home" {
		t.Fatalf("ID() = %q", page.ID())
	}
	if routes := page.Routes(); len(routes) != 1 || routes[0] != "/" {
		t.Fatalf("Routes() = %v", routes)
	}
}

func TestFeedForAnonymousViewer(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{thoughts: []thoughtsapi.Thought{{ID: "t1", Text: "first thought", Username: "alice"}}}
	rr := serve(New(gateway, depsFor("")), httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "first thought") || !strings.Contains(body, `href="/thought/t1"`) {
		t.Fatalf("feed missing thought: %q", body)
	}
	if strings.Contains(body, `name="thoughtText"`) {
		t.Fatal("anonymous feed shows thought form")
	}
}

func TestFeedForSignedInViewerShowsFormAndFriends(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{me: thoughtsapi.Profile{Username: "alice", FriendCount: 1, Friends: []thoughtsapi.Friend{{ID: "u2", Username: "bob"}}}}
	rr := serve(New(gateway, depsFor("alice")), httptest.NewRequest(http.MethodGet, "/", nil))

	body := rr.Body.String()
	if !strings.Contains(body, `name="thoughtText"`) {
		t.Fatal("signed-in feed missing thought form")
	}
	if !strings.Contains(body, `href="/profile/bob"`) {
		t.Fatalf("friend list missing: %q", body)
	}
}

func TestFeedSurvivesFriendsFailure(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{meErr: errors.New("boom")}
	rr := serve(New(gateway, depsFor("alice")), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestFeedUpstreamOutage(t *testing.T) {
	t.Parallel()

	gateway := &fakeGateway{thoughtsErr: &graphql.TransportError{Kind: graphql.TransportNetwork, Err: errors.New("refused")}}
	rr := serve(New(gateway, depsFor("")), httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
}

func TestAddThought(t *testing.T) {
	t.Parallel()

	t.Run("anonymous redirected to login", func(t *testing.T) {
		gateway := &fakeGateway{}
		rr := serve(New(gateway, depsFor("")), postThought("hello"))
		if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login" {
			t.Fatalf("response = %d %q", rr.Code, rr.Header().Get("Location"))
		}
		if len(gateway.added) != 0 {
			t.Fatal("anonymous thought was posted")
		}
	})

	t.Run("blank rejected", func(t *testing.T) {
		gateway := &fakeGateway{}
		rr := serve(New(gateway, depsFor("alice")), postThought("   "))
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rr.Body.String(), "between 1 and 280") {
			t.Fatalf("body missing validation message: %q", rr.Body.String())
		}
	})

	t.Run("valid posted then redirected", func(t *testing.T) {
		gateway := &fakeGateway{}
		rr := serve(New(gateway, depsFor("alice")), postThought(" deep "))
		if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
			t.Fatalf("response = %d %q", rr.Code, rr.Header().Get("Location"))
		}
		if len(gateway.added) != 1 || gateway.added[0] != "deep" {
			t.Fatalf("added = %v", gateway.added)
		}
	})
}

func TestFeedRejectsOtherMethods(t *testing.T) {
	t.Parallel()

	rr := serve(New(&fakeGateway{}, depsFor("")), httptest.NewRequest(http.MethodDelete, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

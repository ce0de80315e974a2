package composition

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/deepthoughts/internal/services/web/integration/thoughtsapi"
	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	"github.com/louisbranch/deepthoughts/internal/services/web/modules"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/deepthoughts/internal/services/web/route"
)

type stubPage struct {
	id      string
	pattern string
}

func (p stubPage) ID() string { return p.id }

func (p stubPage) Routes() []string { return []string{p.pattern} }

func (p stubPage) Serve(w http.ResponseWriter, _ *http.Request, _ route.Params) {
	w.Header().Set("X-Page", p.id)
	w.WriteHeader(http.StatusNoContent)
}

func TestComposeAppHandlerUsesRegistry(t *testing.T) {
	t.Parallel()

	var gotDeps module.Dependencies
	registry := func(_ modules.Gateway, deps module.Dependencies) []module.Page {
		gotDeps = deps
		return []module.Page{
			stubPage{id: "home", pattern: "/"},
			stubPage{id: "notfound", pattern: route.Wildcard},
		}
	}

	h, err := ComposeAppHandler(ComposeInput{
		Dependencies: module.Dependencies{RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: true}},
		Registry:     registry,
	})
	if err != nil {
		t.Fatalf("ComposeAppHandler() error = %v", err)
	}
	if gotDeps.ResolveViewer == nil {
		t.Fatal("registry received nil viewer resolver")
	}
	if !gotDeps.RequestSchemePolicy.TrustForwardedProto {
		t.Fatal("registry lost scheme policy")
	}

	for path, want := range map[string]string{"/": "home", "/missing": "notfound"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if got := rr.Header().Get("X-Page"); got != want {
			t.Fatalf("%s page = %q, want %q", path, got, want)
		}
	}
}

func TestComposeAppHandlerDefaultRegistry(t *testing.T) {
	t.Parallel()

	h, err := ComposeAppHandler(ComposeInput{Gateway: thoughtsapi.NewGateway(nil)})
	if err != nil {
		t.Fatalf("ComposeAppHandler() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nonexistent", nil))
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), `class="not-found"`) {
		t.Fatalf("response = %d %q", rr.Code, rr.Body.String())
	}

	login := httptest.NewRecorder()
	h.ServeHTTP(login, httptest.NewRequest(http.MethodGet, "/login", nil))
	if login.Code != http.StatusOK || !strings.Contains(login.Body.String(), `action="/login"`) {
		t.Fatalf("login = %d", login.Code)
	}
}

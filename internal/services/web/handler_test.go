package web

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/httpx"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/sessioncookie"
)

type upstreamCall struct {
	operation     string
	authorization string
}

type fakeAPI struct {
	mu    sync.Mutex
	calls []upstreamCall
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OperationName string `json:"operationName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.calls = append(f.calls, upstreamCall{operation: body.OperationName, authorization: r.Header.Get("Authorization")})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch body.OperationName {
	case "thoughts":
		_, _ = io.WriteString(w, `{"data":{"thoughts":[{"_id":"t1","thoughtText":"hello world","username":"alice","createdAt":"Jan 1","reactionCount":0,"reactions":[]}]}}`)
	case "me":
		_, _ = io.WriteString(w, `{"data":{"me":{"_id":"u1","username":"alice","email":"alice@example.com","friendCount":0,"friends":[]}}}`)
	case "login":
		_, _ = io.WriteString(w, `{"data":{"login":{"token":"fresh-token","user":{"_id":"u1","username":"alice"}}}}`)
	default:
		_, _ = io.WriteString(w, `{"data":null,"errors":[{"message":"unknown operation"}]}`)
	}
}

func (f *fakeAPI) snapshot() []upstreamCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]upstreamCall(nil), f.calls...)
}

func (f *fakeAPI) count(operation string) int {
	n := 0
	for _, call := range f.snapshot() {
		if call.operation == operation {
			n++
		}
	}
	return n
}

func newTestHandler(t *testing.T) (http.Handler, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{}
	upstream := httptest.NewServer(api)
	t.Cleanup(upstream.Close)

	handler, err := NewHandler(Config{
		GraphQLURL: upstream.URL,
		HTTPClient: upstream.Client(),
		Logger:     log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return handler, api
}

func signedToken(t *testing.T, username string, expires time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"data": map[string]any{"username": username, "email": username + "@example.com", "_id": "u1"},
		"exp":  expires.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestHandlerServesHomeThroughCache(t *testing.T) {
	t.Parallel()

	handler, api := newTestHandler(t)
	for range 2 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "hello world") {
			t.Fatalf("body missing thought: %q", rr.Body.String())
		}
		if rr.Header().Get(httpx.RequestIDHeader) == "" {
			t.Fatal("missing request id header")
		}
	}
	if got := api.count("thoughts"); got != 1 {
		t.Fatalf("thoughts upstream calls = %d, want 1", got)
	}
	if calls := api.snapshot(); calls[0].authorization != "" {
		t.Fatalf("anonymous authorization = %q, want empty", calls[0].authorization)
	}
}

func TestHandlerForwardsViewerToken(t *testing.T) {
	t.Parallel()

	handler, api := newTestHandler(t)
	token := signedToken(t, "alice", time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: token})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `action="/logout"`) {
		t.Fatal("signed-in header missing logout form")
	}
	calls := api.snapshot()
	if len(calls) != 2 {
		t.Fatalf("upstream calls = %+v, want thoughts and me", calls)
	}
	for _, call := range calls {
		if call.authorization != "Bearer "+token {
			t.Fatalf("%s authorization = %q", call.operation, call.authorization)
		}
	}
}

func TestHandlerDropsExpiredToken(t *testing.T) {
	t.Parallel()

	handler, api := newTestHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: signedToken(t, "alice", time.Now().Add(-time.Hour))})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if strings.Contains(rr.Body.String(), `action="/logout"`) {
		t.Fatal("expired token rendered as signed in")
	}
	for _, call := range api.snapshot() {
		if call.authorization != "" {
			t.Fatalf("expired token forwarded: %q", call.authorization)
		}
	}
}

func TestHandlerLoginSetsCookie(t *testing.T) {
	t.Parallel()

	handler, api := newTestHandler(t)
	form := url.Values{"email": {"alice@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/" {
		t.Fatalf("response = %d %q", rr.Code, rr.Header().Get("Location"))
	}
	var token string
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			token = cookie.Value
		}
	}
	if token != "fresh-token" {
		t.Fatalf("cookie token = %q", token)
	}
	if got := api.count("login"); got != 1 {
		t.Fatalf("login calls = %d", got)
	}
}

func TestHandlerAuxiliaryRoutes(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t)
	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantContent string
	}{
		{name: "health", method: http.MethodGet, path: "/up", wantStatus: http.StatusOK, wantContent: "ok"},
		{name: "health post", method: http.MethodPost, path: "/up", wantStatus: http.StatusMethodNotAllowed},
		{name: "stylesheet", method: http.MethodGet, path: "/static/css/app.css", wantStatus: http.StatusOK, wantContent: ".card"},
		{name: "missing asset", method: http.MethodGet, path: "/static/missing.css", wantStatus: http.StatusNotFound},
		{name: "no match", method: http.MethodGet, path: "/nonexistent", wantStatus: http.StatusNotFound, wantContent: `class="not-found"`},
		{name: "logout get", method: http.MethodGet, path: "/logout", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantContent != "" && !strings.Contains(rr.Body.String(), tc.wantContent) {
				t.Fatalf("body missing %q", tc.wantContent)
			}
		})
	}
}

func TestHandlerRejectsBadGraphQLURL(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{GraphQLURL: "://bad"}); err == nil {
		t.Fatal("expected error for malformed graphql url")
	}
}

package graphql

import (
	"context"
	"testing"
)

type tokenKey struct{}

func contextTokens() TokenStore {
	return TokenStoreFunc(func(ctx context.Context) string {
		token, _ := ctx.Value(tokenKey{}).(string)
		return token
	})
}

func TestAuthorizationValue(t *testing.T) {
	t.Parallel()

	if got := AuthorizationValue("tok-1"); got != "Bearer tok-1" {
		t.Fatalf("AuthorizationValue() = %q, want %q", got, "Bearer tok-1")
	}
	if got := AuthorizationValue(""); got != "" {
		t.Fatalf("AuthorizationValue(empty) = %q, want empty", got)
	}
	if got := AuthorizationValue(" tok "); got != "Bearer  tok " {
		t.Fatalf("AuthorizationValue(padded) = %q, want token unchanged", got)
	}
}

func TestAuthLinkSetsHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "token present", token: "tok-1", want: "Bearer tok-1"},
		{name: "token absent", token: "", want: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var seen Header
			terminal := func(_ context.Context, req Request) (Response, error) {
				seen = req.Headers
				return Response{Data: []byte(`{}`)}, nil
			}
			h := AuthLink(contextTokens())(terminal)
			ctx := context.WithValue(context.Background(), tokenKey{}, tc.token)
			original := Header{}.With("x-request-id", "r-1")
			if _, err := h(ctx, Request{Headers: original}); err != nil {
				t.Fatalf("handler error = %v", err)
			}

			got, ok := seen.Get(AuthorizationHeader)
			if !ok {
				t.Fatal("authorization header missing, want explicitly present")
			}
			if got != tc.want {
				t.Fatalf("authorization = %q, want %q", got, tc.want)
			}
			if v, _ := seen.Get("x-request-id"); v != "r-1" {
				t.Fatalf("x-request-id = %q, want r-1", v)
			}
			if _, ok := original.Get(AuthorizationHeader); ok {
				t.Fatal("auth link mutated the caller's headers")
			}
		})
	}
}

func TestAuthLinkNilStoreSendsEmptyAuthorization(t *testing.T) {
	t.Parallel()

	var seen Header
	h := AuthLink(nil)(func(_ context.Context, req Request) (Response, error) {
		seen = req.Headers
		return Response{}, nil
	})
	_, _ = h(context.Background(), Request{})
	if got, ok := seen.Get(AuthorizationHeader); !ok || got != "" {
		t.Fatalf("authorization = %q (%t), want empty and present", got, ok)
	}
}

package graphql

import "testing"

func TestOperationKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		want  Kind
	}{
		{name: "named query", query: "query thoughts($username: String) { thoughts(username: $username) { _id } }", want: KindQuery},
		{name: "shorthand", query: "{ me { _id } }", want: KindQuery},
		{name: "mutation", query: "\n  mutation addThought($thoughtText: String!) { addThought(thoughtText: $thoughtText) { _id } }", want: KindMutation},
		{name: "mutation without name", query: "mutation{ logout }", want: KindMutation},
		{name: "comment before mutation", query: "# writes\nmutation login { login { token } }", want: KindMutation},
		{name: "field named like keyword", query: "mutationsLog { id }", want: KindQuery},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := (Operation{Query: tc.query}).Kind(); got != tc.want {
				t.Fatalf("Kind() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHeaderWithLeavesReceiverUnchanged(t *testing.T) {
	t.Parallel()

	base := Header{}.With("X-Trace", "abc")
	next := base.With("Authorization", "Bearer t")

	if _, ok := base.Get("authorization"); ok {
		t.Fatal("With() mutated the receiver")
	}
	if len(base.values) != 1 {
		t.Fatalf("base len = %d, want 1", len(base.values))
	}
	if got, _ := next.Get("AUTHORIZATION"); got != "Bearer t" {
		t.Fatalf("authorization = %q, want %q", got, "Bearer t")
	}
	if got, _ := next.Get("x-trace"); got != "abc" {
		t.Fatalf("x-trace = %q, want %q", got, "abc")
	}
	names := next.Names()
	if len(names) != 2 || names[0] != "authorization" || names[1] != "x-trace" {
		t.Fatalf("Names() = %v", names)
	}
}

func TestZeroHeaderIsUsable(t *testing.T) {
	t.Parallel()

	var h Header
	if len(h.Names()) != 0 {
		t.Fatalf("Names() = %v, want none", h.Names())
	}
	if _, ok := h.Get("authorization"); ok {
		t.Fatal("expected empty header")
	}
	if got, _ := h.With("a", "b").Get("a"); got != "b" {
		t.Fatalf("With() value = %q, want b", got)
	}
}

package graphql

import (
	"sort"
	"strings"
)

// Kind distinguishes read operations from writes.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Operation is a named GraphQL document.
type Operation struct {
	Name  string
	Query string
}

// Kind reports the operation type from the document's leading keyword.
// Anonymous shorthand documents ("{ ... }") are queries.
func (o Operation) Kind() Kind {
	doc := strings.TrimSpace(stripComments(o.Query))
	if strings.HasPrefix(doc, string(KindMutation)) {
		rest := strings.TrimPrefix(doc, string(KindMutation))
		if rest == "" || !isNameRune(rune(rest[0])) {
			return KindMutation
		}
	}
	return KindQuery
}

func stripComments(doc string) string {
	var b strings.Builder
	for _, line := range strings.Split(doc, "\n") {
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func isNameRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// Variables are the operation inputs.
type Variables map[string]any

// Header is an immutable set of outbound request headers with lower-case
// names. The zero value is empty and ready to use.
type Header struct {
	values map[string]string
}

// Get returns the header value and whether it is present.
func (h Header) Get(name string) (string, bool) {
	value, ok := h.values[canonicalHeaderName(name)]
	return value, ok
}

// With returns a copy of h with name set to value. h is left unchanged.
func (h Header) With(name, value string) Header {
	next := Header{values: make(map[string]string, len(h.values)+1)}
	for key, existing := range h.values {
		next.values[key] = existing
	}
	next.values[canonicalHeaderName(name)] = value
	return next
}

// Names returns the header names in sorted order.
func (h Header) Names() []string {
	names := make([]string, 0, len(h.values))
	for key := range h.values {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

func canonicalHeaderName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Request is one outbound operation travelling through the link chain.
type Request struct {
	Operation Operation
	Variables Variables
	Headers   Header
}

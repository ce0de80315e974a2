// Package route resolves request paths against the static page route table.
//
// The table is plain data: an ordered list of pattern/page pairs evaluated by
// a single match function. Literal patterns win over parameterized ones and
// the wildcard pattern only matches when nothing else does, so every path
// resolves to exactly one page.
package route

import (
	"fmt"
	"net/url"
	"strings"
)

// Wildcard is the catch-all pattern.
const Wildcard = "*"

// Route pairs a path pattern with the page that renders it.
//
// Patterns are absolute paths whose segments are literals or {name}
// parameters, e.g. "/thought/{id}".
type Route struct {
	Pattern string
	Page    string
}

// Params holds the path parameters captured by a match.
type Params struct {
	values map[string]string
}

// Lookup returns the named parameter and whether the matched pattern bound it.
func (p Params) Lookup(name string) (string, bool) {
	value, ok := p.values[name]
	return value, ok
}

// Get returns the named parameter or the empty string.
func (p Params) Get(name string) string {
	return p.values[name]
}

// Match is the outcome of resolving one path.
type Match struct {
	Route    Route
	Params   Params
	Fallback bool
}

type segment struct {
	literal string
	param   string
}

func (s segment) isParam() bool {
	return s.param != ""
}

type compiled struct {
	route    Route
	segments []segment
}

// Table is an immutable route table.
type Table struct {
	routes        []Route
	literals      map[string]Route
	parameterized []compiled
	fallback      Route
}

// NewTable validates routes and builds a table.
//
// It fails when a pattern is malformed, when the wildcard is missing or
// repeated, or when two non-wildcard patterns can match the same concrete
// path.
func NewTable(routes []Route) (*Table, error) {
	table := &Table{
		routes:   append([]Route(nil), routes...),
		literals: make(map[string]Route),
	}
	hasFallback := false
	var all []compiled
	for _, r := range routes {
		r.Pattern = strings.TrimSpace(r.Pattern)
		r.Page = strings.TrimSpace(r.Page)
		if r.Page == "" {
			return nil, fmt.Errorf("route %q: page is required", r.Pattern)
		}
		if r.Pattern == Wildcard {
			if hasFallback {
				return nil, fmt.Errorf("route %q: wildcard already owned by page %q", r.Page, table.fallback.Page)
			}
			hasFallback = true
			table.fallback = r
			continue
		}
		segments, err := parsePattern(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route %q: %w", r.Pattern, err)
		}
		c := compiled{route: r, segments: segments}
		for _, prior := range all {
			if overlaps(prior.segments, c.segments) {
				return nil, fmt.Errorf("route %q (page %q) overlaps route %q (page %q)", r.Pattern, r.Page, prior.route.Pattern, prior.route.Page)
			}
		}
		all = append(all, c)
		if isLiteral(segments) {
			table.literals[r.Pattern] = r
			continue
		}
		table.parameterized = append(table.parameterized, c)
	}
	if !hasFallback {
		return nil, fmt.Errorf("wildcard route %q is required", Wildcard)
	}
	return table, nil
}

// MustTable is NewTable that panics on an invalid table.
func MustTable(routes []Route) *Table {
	table, err := NewTable(routes)
	if err != nil {
		panic(fmt.Sprintf("route table: %v", err))
	}
	return table
}

// Routes returns the table routes in declaration order.
func (t *Table) Routes() []Route {
	if t == nil {
		return nil
	}
	return append([]Route(nil), t.routes...)
}

// Match resolves an escaped request path to exactly one route.
func (t *Table) Match(escapedPath string) Match {
	path := NormalizePath(escapedPath)
	if r, ok := t.literals[path]; ok {
		return Match{Route: r}
	}
	parts := splitPath(path)
	for _, c := range t.parameterized {
		if params, ok := bind(c.segments, parts); ok {
			return Match{Route: c.route, Params: params}
		}
	}
	return Match{Route: t.fallback, Fallback: true}
}

// NormalizePath maps the empty path to "/" and drops one trailing slash.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

func parsePattern(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern must begin with /")
	}
	if pattern == "/" {
		return nil, nil
	}
	if strings.HasSuffix(pattern, "/") {
		return nil, fmt.Errorf("pattern must not end with /")
	}
	seen := make(map[string]bool)
	parts := splitPath(pattern)
	segments := make([]segment, 0, len(parts))
	for _, part := range parts {
		switch {
		case part == "":
			return nil, fmt.Errorf("pattern has an empty segment")
		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := strings.TrimSpace(part[1 : len(part)-1])
			if !validParamName(name) {
				return nil, fmt.Errorf("invalid parameter name %q", name)
			}
			if seen[name] {
				return nil, fmt.Errorf("parameter %q repeated", name)
			}
			seen[name] = true
			segments = append(segments, segment{param: name})
		case strings.ContainsAny(part, "{}*"):
			return nil, fmt.Errorf("segment %q mixes literal and parameter syntax", part)
		default:
			segments = append(segments, segment{literal: part})
		}
	}
	return segments, nil
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func splitPath(path string) []string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func isLiteral(segments []segment) bool {
	for _, s := range segments {
		if s.isParam() {
			return false
		}
	}
	return true
}

// overlaps reports whether some concrete path matches both patterns.
func overlaps(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].isParam() || b[i].isParam() {
			continue
		}
		if a[i].literal != b[i].literal {
			return false
		}
	}
	return true
}

func bind(segments []segment, parts []string) (Params, bool) {
	if len(segments) != len(parts) {
		return Params{}, false
	}
	values := make(map[string]string)
	for i, s := range segments {
		part := parts[i]
		if !s.isParam() {
			if part != s.literal {
				return Params{}, false
			}
			continue
		}
		if part == "" {
			return Params{}, false
		}
		value, err := url.PathUnescape(part)
		if err != nil {
			return Params{}, false
		}
		values[s.param] = value
	}
	return Params{values: values}, true
}

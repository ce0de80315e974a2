// Package requestmeta resolves scheme and origin facts about inbound requests.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls whether proxy headers are trusted for the scheme.
// X-Forwarded-Proto is ignored unless TrustForwardedProto is set.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// Scheme returns "https" or "http" for r.
func (p SchemePolicy) Scheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if p.TrustForwardedProto {
		switch proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto {
		case "http", "https":
			return proto
		}
	}
	if r.TLS != nil {
		return "https"
	}
	if r.URL != nil && strings.EqualFold(r.URL.Scheme, "https") {
		return "https"
	}
	return "http"
}

// IsHTTPS reports whether r should be treated as HTTPS.
func (p SchemePolicy) IsHTTPS(r *http.Request) bool {
	return p.Scheme(r) == "https"
}

// SameOrigin reports whether the Origin header, or the Referer when Origin is
// absent, names the origin r was sent to.
func (p SchemePolicy) SameOrigin(r *http.Request) bool {
	if r == nil {
		return false
	}
	want, ok := origin(p.Scheme(r), r.Host)
	if !ok {
		return false
	}
	source := strings.TrimSpace(r.Header.Get("Origin"))
	if source == "" {
		source = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if source == "" {
		return false
	}
	parsed, err := url.Parse(source)
	if err != nil || parsed.Scheme == "" {
		return false
	}
	got, ok := origin(parsed.Scheme, parsed.Host)
	return ok && got == want
}

// origin normalizes scheme://host:port, filling the default port.
func origin(scheme, hostport string) (string, bool) {
	scheme = strings.ToLower(strings.TrimSpace(scheme))
	parsed, err := url.Parse("//" + strings.TrimSpace(hostport))
	if err != nil {
		return "", false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", false
	}
	port := parsed.Port()
	if port == "" {
		switch scheme {
		case "https":
			port = "443"
		case "http":
			port = "80"
		default:
			return "", false
		}
	}
	return scheme + "://" + host + ":" + port, true
}

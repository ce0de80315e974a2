package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSchemeHonoursPolicy(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")

	if (SchemePolicy{}).IsHTTPS(req) {
		t.Fatal("untrusted forwarded proto should be ignored")
	}
	if !(SchemePolicy{TrustForwardedProto: true}).IsHTTPS(req) {
		t.Fatal("trusted forwarded proto should be honoured")
	}

	tlsReq := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	tlsReq.TLS = &tls.ConnectionState{}
	if !(SchemePolicy{}).IsHTTPS(tlsReq) {
		t.Fatal("TLS request should be https")
	}
}

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "matching origin", origin: "http://example.com", want: true},
		{name: "explicit default port", origin: "http://example.com:80", want: true},
		{name: "matching referer", referer: "http://example.com/login", want: true},
		{name: "foreign origin", origin: "http://evil.test", want: false},
		{name: "scheme mismatch", origin: "https://example.com", want: false},
		{name: "port mismatch", origin: "http://example.com:8080", want: false},
		{name: "no proof", want: false},
		{name: "origin wins over referer", origin: "http://evil.test", referer: "http://example.com/", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "http://example.com/login", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			if got := (SchemePolicy{}).SameOrigin(req); got != tc.want {
				t.Fatalf("SameOrigin() = %t, want %t", got, tc.want)
			}
		})
	}
}

func TestSameOriginNilRequest(t *testing.T) {
	t.Parallel()

	if (SchemePolicy{}).SameOrigin(nil) {
		t.Fatal("nil request should not be same-origin")
	}
}

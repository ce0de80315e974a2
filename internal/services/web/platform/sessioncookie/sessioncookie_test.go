package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/deepthoughts/internal/services/web/platform/requestmeta"
)

func TestReadTrimsAndRejectsBlank(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("Read() without cookie = ok")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  tok  "})
	got, ok := Read(req)
	if !ok || got != "tok" {
		t.Fatalf("Read() = %q, %t", got, ok)
	}

	blank := httptest.NewRequest(http.MethodGet, "/", nil)
	blank.AddCookie(&http.Cookie{Name: Name, Value: " "})
	if _, ok := Read(blank); ok {
		t.Fatal("Read() blank cookie = ok")
	}
	if _, ok := Read(nil); ok {
		t.Fatal("Read(nil) = ok")
	}
}

func TestWriteAndClear(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "http://example.com/login", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	policy := requestmeta.SchemePolicy{TrustForwardedProto: true}

	rr := httptest.NewRecorder()
	Write(rr, req, "tok", policy)
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if c := cookies[0]; c.Name != Name || c.Value != "tok" || !c.HttpOnly || !c.Secure || c.Path != "/" {
		t.Fatalf("cookie = %+v", c)
	}

	rr = httptest.NewRecorder()
	Clear(rr, req, requestmeta.SchemePolicy{})
	cookies = rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 || cookies[0].Secure {
		t.Fatalf("clear cookie = %+v", cookies)
	}
}

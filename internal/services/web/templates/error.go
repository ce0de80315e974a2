package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "title.not_found")
	}
	return T(loc, "title.error")
}

func errorMessage(statusCode int, loc Localizer) string {
	switch statusCode {
	case http.StatusUnauthorized:
		return T(loc, "error.unauthorized")
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return T(loc, "error.unavailable")
	default:
		return T(loc, "error.generic")
	}
}

// ErrorState renders the in-shell error content for statusCode.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	if statusCode == http.StatusNotFound {
		return NotFound(loc)
	}
	return component(func(_ context.Context, h *html) {
		h.tag("div", "class", "error-state")
		h.element("h2", T(loc, "error.status", statusCode))
		h.element("p", errorMessage(statusCode, loc))
		if statusCode == http.StatusUnauthorized {
			h.element("a", T(loc, "nav.login"), "href", routepath.Login, "class", "btn")
		} else {
			h.element("a", T(loc, "not_found.back"), "href", routepath.Root, "class", "btn")
		}
		h.end("div")
	})
}

// Package weberror renders shared app-shell error responses for pages.
package weberror

import (
	"log"
	"net/http"
	"strings"

	module "github.com/louisbranch/deepthoughts/internal/services/web/module"
	apperrors "github.com/louisbranch/deepthoughts/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/deepthoughts/internal/services/web/platform/i18n"
	"github.com/louisbranch/deepthoughts/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/deepthoughts/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the app error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound ||
		statusCode == http.StatusUnauthorized ||
		statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes the shell error page for statusCode.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page := pagerender.NewContext(w, r, deps)
	page.Title = webtemplates.ErrorPageTitle(statusCode, page.Loc)
	if err := pagerender.WritePage(w, r, page, statusCode, webtemplates.ErrorState(statusCode, page.Loc)); err != nil {
		logger(deps).Printf("error page render failed status=%d err=%v", statusCode, err)
	}
}

// WritePageError maps err to a status and writes the matching response.
// Server-side failures are logged.
func WritePageError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		logger(deps).Printf("page failed path=%s status=%d err=%v", path, statusCode, err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	loc, _ := webi18n.ResolveLocalizer(w, r, deps.ResolveLanguage)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

func logger(deps module.Dependencies) *log.Logger {
	if deps.Logger != nil {
		return deps.Logger
	}
	return log.Default()
}

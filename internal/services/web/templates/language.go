package templates

import (
	"net/url"
	"strings"

	webi18n "github.com/louisbranch/deepthoughts/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the UI.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	active, ok := webi18n.ParseTag(page.Lang)
	if !ok {
		active = webi18n.Default()
	}
	supported := webi18n.Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  languageLabel(page.Loc, tag),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	path := strings.TrimSpace(page.CurrentPath)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(webi18n.LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func languageLabel(loc Localizer, tag language.Tag) string {
	switch tag.String() {
	case "pt-BR":
		return T(loc, "nav.lang_pt_br")
	case "en-US":
		return T(loc, "nav.lang_en")
	default:
		return tag.String()
	}
}

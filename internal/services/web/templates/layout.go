package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/louisbranch/deepthoughts/internal/services/web/routepath"
)

// Layout renders the page shell: header, the routed content passed as templ
// children, then footer.
func Layout(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *html) {
		lang := page.Lang
		if lang == "" {
			lang = "en-US"
		}
		h.raw("<!DOCTYPE html>")
		h.tag("html", "lang", lang)
		h.raw("<head>")
		h.raw(`<meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.element("title", page.DocumentTitle())
		h.tag("link", "rel", "stylesheet", "href", routepath.StaticPrefix+"css/app.css")
		h.raw("</head><body>")
		h.tag("div", "class", "flex-column justify-flex-start min-100-vh")
		h.render(ctx, Header(page))
		h.tag("main", "class", "container")
		h.render(ctx, templ.GetChildren(ctx))
		h.end("main")
		h.render(ctx, Footer(page))
		h.raw("</div></body></html>")
	})
}

// Header renders the banner and the viewer-dependent navigation.
func Header(page PageContext) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.tag("header", "class", "bg-secondary mb-4 py-2 flex-row align-center")
		h.tag("div", "class", "container flex-row justify-space-between-lg justify-center align-center")
		h.tag("a", "href", routepath.Root)
		h.element("h1", T(page.Loc, "app.name"))
		h.end("a")
		h.element("p", T(page.Loc, "app.tagline"), "class", "m-0")
		h.raw("<nav class=\"text-center\">")
		if page.Viewer.SignedIn() {
			h.element("a", T(page.Loc, "nav.me"), "href", routepath.Profile)
			h.tag("form", "method", "post", "action", routepath.Logout, "class", "inline")
			h.element("button", T(page.Loc, "nav.logout"), "type", "submit", "class", "link")
			h.end("form")
		} else {
			h.element("a", T(page.Loc, "nav.login"), "href", routepath.Login)
			h.element("a", T(page.Loc, "nav.signup"), "href", routepath.Signup)
		}
		for _, option := range LanguageOptions(page) {
			class := "lang"
			if option.Active {
				class = "lang active"
			}
			h.element("a", option.Label, "href", LanguageURL(page, option.Tag), "class", class, "hreflang", option.Tag)
		}
		h.raw("</nav></div></header>")
	})
}

// Footer renders the page footer.
func Footer(page PageContext) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.tag("footer", "class", "w-100 mt-auto bg-secondary p-4")
		h.element("div", T(page.Loc, "footer.credit"), "class", "container")
		h.end("footer")
	})
}

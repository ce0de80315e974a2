package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// html accumulates markup and remembers the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// tag writes <name attr="value"...> with escaped attribute values.
func (h *html) tag(name string, attrs ...string) {
	h.raw("<" + name)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.raw(" " + attrs[i] + `="`)
		h.text(attrs[i+1])
		h.raw(`"`)
	}
	h.raw(">")
}

func (h *html) end(name string) {
	h.raw("</" + name + ">")
}

// element writes a tag wrapping escaped text.
func (h *html) element(name, content string, attrs ...string) {
	h.tag(name, attrs...)
	h.text(content)
	h.end(name)
}

func (h *html) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// component builds a templ component from a markup function.
func component(fn func(ctx context.Context, h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(ctx, h)
		return h.err
	})
}

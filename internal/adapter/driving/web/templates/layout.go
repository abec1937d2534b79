package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

// AppName is shown in the navbar and appended to page titles.
const AppName = "NuCamp"

type navLink struct {
	path  string
	label string
}

var navLinks = []navLink{
	{path: "/", label: "Home"},
	{path: "/directory", label: "Directory"},
	{path: "/about", label: "About"},
}

// Layout wraps body in the full HTML document with header navigation.
func Layout(page vm.PageViewModel, loc Localizer, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)

		lang := page.Lang
		if lang == "" {
			lang = "en"
		}
		title := AppName
		if page.Title != "" {
			title = page.Title + " | " + AppName
		}

		hw.raw("<!doctype html><html")
		hw.attr("lang", lang)
		hw.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.raw("<title>")
		hw.text(title)
		hw.raw(`</title><link rel="stylesheet" href="/static/app.css"><script src="/static/app.js" defer></script></head><body>`)

		hw.raw(`<nav class="navbar"><a class="navbar-brand" href="/">`)
		hw.text(AppName)
		hw.raw(`</a><ul class="navbar-nav">`)
		for _, link := range navLinks {
			hw.raw(`<li class="nav-item"><a class="nav-link`)
			if link.path == page.ActivePath {
				hw.raw(` active" aria-current="page`)
			}
			hw.raw(`"`)
			hw.href(link.path)
			hw.raw(">")
			hw.text(T(loc, link.label))
			hw.raw("</a></li>")
		}
		hw.raw("</ul></nav><main>")

		hw.component(body)

		hw.raw("</main></body></html>")
		return hw.err
	})
}

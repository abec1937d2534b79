package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Loading renders the loading indicator. app.js reloads the page while a
// data-loading element is present.
func Loading(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="col loading" data-loading role="status"><span class="spinner" aria-hidden="true"></span><p>`)
		hw.text(T(loc, "Loading..."))
		hw.raw("</p></div>")
		return hw.err
	})
}

// ErrorMessage renders a provider error message verbatim (escaped).
func ErrorMessage(errMess string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="container"><div class="row"><div class="col"><h4 class="error-message">`)
		hw.text(errMess)
		hw.raw("</h4></div></div></div>")
		return hw.err
	})
}

// container wraps a single-row body.
func container(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="container"><div class="row">`)
		hw.component(body)
		hw.raw("</div></div>")
		return hw.err
	})
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

// About renders the about page with the community partner list.
func About(props vm.AboutViewModel, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="container about"><div class="row"><div class="col">`)
		hw.component(aboutBreadcrumb(loc))
		hw.raw("<h2>")
		hw.text(T(loc, "About Us"))
		hw.raw("</h2><hr></div></div>")

		hw.raw(`<div class="row"><div class="col"><h3>`)
		hw.text(T(loc, "Community Partners"))
		hw.raw("</h3></div>")
		if props.ErrMess != "" {
			hw.component(ErrorMessage(Text(loc, props.ErrMess)))
		} else {
			hw.raw(`<div class="col mt-4"><ul class="partners">`)
			for i, p := range props.Partners {
				class, style := fadeAttrs(props.Animations, i)
				hw.raw(`<li class="media`)
				hw.raw(class)
				hw.raw(`"`)
				if style != "" {
					hw.attr("style", style)
				}
				hw.raw(`><img`)
				hw.src(p.ImageURL)
				hw.attr("alt", p.Name)
				hw.raw(` width="150"><div class="media-body"><h5>`)
				hw.text(p.Name)
				hw.raw("</h5>")
				hw.raw(p.DescriptionHTML)
				hw.raw("</div></li>")
			}
			hw.raw("</ul></div>")
		}
		hw.raw("</div></div>")
		return hw.err
	})
}

func aboutBreadcrumb(loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<nav aria-label="breadcrumb"><ol class="breadcrumb"><li class="breadcrumb-item"><a href="/">`)
		hw.text(T(loc, "Home"))
		hw.raw(`</a></li><li class="breadcrumb-item active" aria-current="page">`)
		hw.text(T(loc, "About"))
		hw.raw("</li></ol></nav>")
		return hw.err
	})
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

// Directory renders the grid of campsites, each linking to its detail page.
func Directory(props vm.DirectoryViewModel, loc Localizer) templ.Component {
	if props.ErrMess != "" {
		return ErrorMessage(Text(loc, props.ErrMess))
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="container directory"><div class="row"><div class="col"><h2>`)
		hw.text(T(loc, "Directory"))
		hw.raw(`</h2><hr></div></div><div class="row">`)
		for i, c := range props.Campsites {
			class, style := fadeAttrs(props.Animations, i)
			hw.raw(`<div class="col-md-5 m-1`)
			hw.raw(class)
			hw.raw(`"`)
			hw.attr("id", campsiteKey(c.ID))
			if style != "" {
				hw.attr("style", style)
			}
			hw.raw(`><a class="card directory-card"`)
			hw.href(c.DetailPath)
			hw.raw(`><img class="card-img"`)
			hw.src(c.ImageURL)
			hw.attr("alt", c.Name)
			hw.raw(`><span class="card-title">`)
			hw.text(c.Name)
			hw.raw("</span></a></div>")
		}
		hw.raw("</div></div>")
		return hw.err
	})
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

// Home renders the featured campsite, promotion and partner cards.
func Home(props vm.HomeViewModel, loc Localizer) templ.Component {
	if props.IsLoading {
		return container(Loading(loc))
	}
	if props.ErrMess != "" {
		return ErrorMessage(Text(loc, props.ErrMess))
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="container home"><div class="row">`)
		for i, card := range props.Cards {
			class, style := fadeAttrs(props.Animations, i)
			hw.raw(`<div class="col-md m-1`)
			hw.raw(class)
			hw.raw(`"`)
			if style != "" {
				hw.attr("style", style)
			}
			hw.raw(`><div class="card"><img class="card-img-top"`)
			hw.src(card.ImageURL)
			hw.attr("alt", card.Name)
			hw.raw(`><div class="card-body"><h5 class="card-subtitle">`)
			hw.text(T(loc, card.Title))
			hw.raw(`</h5><h4 class="card-title">`)
			if card.Link != "" {
				hw.raw("<a")
				hw.href(card.Link)
				hw.raw(">")
				hw.text(card.Name)
				hw.raw("</a>")
			} else {
				hw.text(card.Name)
			}
			hw.raw(`</h4><div class="card-text">`)
			hw.raw(card.DescriptionHTML)
			hw.raw("</div></div></div></div>")
		}
		hw.raw("</div></div>")
		return hw.err
	})
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

// DirectoryPath is the static breadcrumb target of the detail view.
const DirectoryPath = "/directory"

// CampsiteInfo is the campsite detail view. It renders exactly one of, in
// priority order: the loading indicator, the error message, the campsite with
// its comments, or nothing.
func CampsiteInfo(props vm.CampsiteInfoViewModel, loc Localizer) templ.Component {
	if props.IsLoading {
		return container(Loading(loc))
	}
	if props.ErrMess != "" {
		return ErrorMessage(Text(loc, props.ErrMess))
	}
	if props.Campsite != nil {
		return campsiteDetail(props, loc)
	}
	return templ.NopComponent
}

func campsiteDetail(props vm.CampsiteInfoViewModel, loc Localizer) templ.Component {
	campsite := *props.Campsite
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="container campsite-info"><div class="row"><div class="col">`)
		hw.component(Breadcrumb(loc, campsite.Name))
		hw.raw("<h2>")
		hw.text(campsite.Name)
		hw.raw("</h2><hr></div></div>")

		hw.raw(`<div class="row">`)
		hw.component(RenderCampsite(campsite, props.Animations, loc))
		hw.component(RenderComments(props.Comments, props.Form, props.Animations, loc))
		hw.raw("</div></div>")
		return hw.err
	})
}

// Breadcrumb renders the static Directory link followed by the active item.
func Breadcrumb(loc Localizer, active string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<nav aria-label="breadcrumb"><ol class="breadcrumb"><li class="breadcrumb-item"><a`)
		hw.href(DirectoryPath)
		hw.raw(">")
		hw.text(T(loc, "Directory"))
		hw.raw(`</a></li><li class="breadcrumb-item active" aria-current="page">`)
		hw.text(active)
		hw.raw("</li></ol></nav>")
		return hw.err
	})
}

// RenderCampsite renders the campsite image and description card.
func RenderCampsite(campsite vm.CampsiteViewModel, animate bool, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="col-md-5 m-1`)
		if animate {
			hw.raw(" fade-transform")
		}
		hw.raw(`"`)
		hw.attr("id", campsiteKey(campsite.ID))
		hw.raw(`><div class="card"><img class="card-img-top"`)
		hw.src(campsite.ImageURL)
		hw.attr("alt", campsite.Name)
		hw.raw(`><div class="card-body">`)
		if campsite.Elevation != 0 {
			hw.raw(`<p class="card-subtitle">`)
			hw.text(T(loc, "Elevation: %d ft", campsite.Elevation))
			hw.raw("</p>")
		}
		// DescriptionHTML is sanitized by the markdown renderer.
		hw.raw(`<div class="card-text">`)
		hw.raw(campsite.DescriptionHTML)
		hw.raw("</div></div></div></div>")
		return hw.err
	})
}

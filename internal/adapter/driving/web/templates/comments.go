package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

// RenderComments renders nothing for absent (nil) comments. Otherwise it
// renders one entry per comment in the given order, followed by the comment
// submission form.
func RenderComments(comments []vm.CommentViewModel, form vm.CommentFormViewModel, animate bool, loc Localizer) templ.Component {
	if comments == nil {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="col-md-5 m-1 comments"><h4>`)
		hw.text(T(loc, "Comments"))
		hw.raw("</h4>")

		for i, c := range comments {
			class, style := fadeAttrs(animate, i)
			hw.raw(`<div class="comment`)
			hw.raw(class)
			hw.raw(`"`)
			hw.attr("id", c.Key)
			if style != "" {
				hw.attr("style", style)
			}
			hw.attr("data-rating", strconv.Itoa(c.Rating))
			hw.raw(`><p><span class="comment-text">`)
			hw.text(c.Text)
			hw.raw(`</span><br><span class="comment-author">-- `)
			hw.text(c.Author)
			hw.raw(`</span>, <span class="comment-date">`)
			hw.text(c.Date)
			hw.raw("</span></p></div>")
		}

		hw.component(CommentForm(form, loc))
		hw.raw("</div>")
		return hw.err
	})
}

func campsiteKey(id int64) string {
	return "campsite-" + strconv.FormatInt(id, 10)
}

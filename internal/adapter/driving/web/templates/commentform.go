package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/nucampsite/internal/adapter/driving/web/viewmodel"
)

// CommentFormID is the anchor the open link and the modal share.
const CommentFormID = "comment-form"

// CommentForm renders the "Submit Comment" button and, when open, the modal
// with the rating, author and comment fields.
func CommentForm(form vm.CommentFormViewModel, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<a class="btn btn-outline-secondary"`)
		hw.href(form.OpenURL + "#" + CommentFormID)
		hw.raw(`><i class="fa fa-pencil"></i> `)
		hw.text(T(loc, "Submit Comment"))
		hw.raw("</a>")

		if form.Open {
			hw.component(commentModal(form, loc))
		}
		return hw.err
	})
}

func commentModal(form vm.CommentFormViewModel, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<div class="modal open" role="dialog" aria-modal="true"`)
		hw.attr("id", CommentFormID)
		hw.raw(`><div class="modal-content"><div class="modal-header"><h5 class="modal-title">`)
		hw.text(T(loc, "Submit Comment"))
		hw.raw(`</h5><a class="close"`)
		hw.href(form.CloseURL)
		hw.attr("aria-label", T(loc, "Close"))
		hw.raw(`>&times;</a></div><div class="modal-body"><form method="post"`)
		hw.attr("action", string(templ.URL(form.ActionURL)))
		hw.raw(`>`)
		hw.raw(`<input type="hidden" name="csrf_token"`)
		hw.attr("value", form.CSRFToken)
		hw.raw(">")

		hw.raw(`<div class="form-group"><label for="rating">`)
		hw.text(T(loc, "Rating"))
		hw.raw(`</label><select class="form-control" id="rating" name="rating">`)
		for _, r := range form.Ratings {
			value := strconv.Itoa(r)
			hw.raw("<option")
			hw.attr("value", value)
			if r == form.Rating {
				hw.raw(" selected")
			}
			hw.raw(">")
			hw.text(value)
			hw.raw("</option>")
		}
		hw.raw("</select></div>")

		hw.raw(`<div class="form-group"><label for="author">`)
		hw.text(T(loc, "Your Name"))
		hw.raw(`</label><input class="form-control`)
		if len(form.AuthorErrors) > 0 {
			hw.raw(" is-invalid")
		}
		hw.raw(`" type="text" id="author" name="author"`)
		hw.attr("placeholder", T(loc, "Your Name"))
		hw.attr("value", form.Author)
		hw.raw(">")
		for _, msg := range form.AuthorErrors {
			hw.raw(`<div class="text-danger">`)
			hw.text(msg)
			hw.raw("</div>")
		}
		hw.raw("</div>")

		hw.raw(`<div class="form-group"><label for="text">`)
		hw.text(T(loc, "Comment"))
		hw.raw(`</label><textarea class="form-control" id="text" name="text" rows="6">`)
		hw.text(form.Text)
		hw.raw("</textarea></div>")

		hw.raw(`<button type="submit" class="btn btn-primary">`)
		hw.text(T(loc, "Submit"))
		hw.raw(`</button> <a class="btn btn-secondary"`)
		hw.href(form.CloseURL)
		hw.raw(">")
		hw.text(T(loc, "Cancel"))
		hw.raw("</a></form></div></div></div>")
		return hw.err
	})
}

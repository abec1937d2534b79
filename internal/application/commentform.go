package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// FormState is the open/closed state of the comment submission modal.
type FormState uint8

const (
	FormClosed FormState = iota
	FormOpen
)

// String returns a lowercase name for logs.
func (s FormState) String() string {
	if s == FormOpen {
		return "open"
	}
	return "closed"
}

// OpenForm is the Closed -> Open transition. Opening an open form is a no-op.
func OpenForm(FormState) FormState { return FormOpen }

// CloseForm is the Open -> Closed transition taken on cancel, dismiss and
// successful submission.
func CloseForm(FormState) FormState { return FormClosed }

// ErrFormClosed is returned when a submission arrives while the form is closed.
var ErrFormClosed = errors.New("comment form is closed")

// CommentPoster receives accepted submissions. The form does not inspect the
// outcome beyond passing a returned error back to its caller.
type CommentPoster interface {
	PostComment(ctx context.Context, campsiteID int64, rating model.Rating, author, text string) error
}

// CommentPosterFunc adapts a plain function to CommentPoster.
type CommentPosterFunc func(ctx context.Context, campsiteID int64, rating model.Rating, author, text string) error

// PostComment calls f.
func (f CommentPosterFunc) PostComment(ctx context.Context, campsiteID int64, rating model.Rating, author, text string) error {
	return f(ctx, campsiteID, rating, author, text)
}

// CommentForm is the comment submission modal for one campsite. It owns only
// its open/closed state.
type CommentForm struct {
	campsiteID int64
	state      FormState
	poster     CommentPoster
}

// NewCommentForm creates a closed form that dispatches to poster.
func NewCommentForm(campsiteID int64, poster CommentPoster) *CommentForm {
	return &CommentForm{campsiteID: campsiteID, state: FormClosed, poster: poster}
}

// CampsiteID returns the campsite the form posts comments for.
func (f *CommentForm) CampsiteID() int64 { return f.campsiteID }

// State returns the current modal state.
func (f *CommentForm) State() FormState { return f.state }

// IsOpen reports whether the modal is showing.
func (f *CommentForm) IsOpen() bool { return f.state == FormOpen }

// Open shows the modal.
func (f *CommentForm) Open() { f.state = OpenForm(f.state) }

// Close hides the modal without submitting.
func (f *CommentForm) Close() { f.state = CloseForm(f.state) }

// Submit validates the input. Invalid input leaves the form open, returns the
// failed rules and never reaches the poster. Valid input closes the form and
// calls PostComment exactly once.
func (f *CommentForm) Submit(ctx context.Context, rating model.Rating, author, text string) (FieldErrors, error) {
	if f.state != FormOpen {
		return nil, ErrFormClosed
	}

	in := model.CommentInput{CampsiteID: f.campsiteID, Rating: rating, Author: author, Text: text}

	fieldErrs, err := ValidateCommentInput(in)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return fieldErrs, nil
	}

	f.Close()

	if err := f.poster.PostComment(ctx, f.campsiteID, rating, strings.TrimSpace(author), text); err != nil {
		return nil, fmt.Errorf("post comment for campsite %d: %w", f.campsiteID, err)
	}

	return nil, nil
}

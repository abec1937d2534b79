package application

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// Author length bounds enforced by the comment form.
const (
	AuthorMinLength = 2
	AuthorMaxLength = 15
)

// ValidationRule names a single rule applied to a form field.
type ValidationRule string

const (
	RuleRequired  ValidationRule = "required"
	RuleMinLength ValidationRule = "minLength"
	RuleMaxLength ValidationRule = "maxLength"
)

// Field names reported in FieldErrors.
const FieldAuthor = "author"

// ErrInvalidComment is returned when a comment fails validation outside the
// form flow (for example, through the JSON API).
var ErrInvalidComment = errors.New("invalid comment")

// FieldError is a single failed validation rule with its user-facing message.
type FieldError struct {
	Field   string
	Rule    ValidationRule
	Message string
}

// FieldErrors is the ordered list of failed rules for a submission.
type FieldErrors []FieldError

// For returns the failures recorded for the named field, in rule order.
func (fe FieldErrors) For(field string) FieldErrors {
	var out FieldErrors
	for _, e := range fe {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns the user-facing messages of every failure.
func (fe FieldErrors) Messages() []string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// Error implements error so FieldErrors can be wrapped with ErrInvalidComment.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, e := range fe {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// ValidateAuthor applies the required, minLength and maxLength rules to the
// author value trimmed of surrounding whitespace. Lengths count runes. Every
// failing rule is reported, so an empty author fails both required and
// minLength.
func ValidateAuthor(author string) FieldErrors {
	author = strings.TrimSpace(author)
	n := utf8.RuneCountInString(author)

	var errs FieldErrors
	if n == 0 {
		errs = append(errs, FieldError{Field: FieldAuthor, Rule: RuleRequired, Message: "Required"})
	}
	if n < AuthorMinLength {
		errs = append(errs, FieldError{
			Field:   FieldAuthor,
			Rule:    RuleMinLength,
			Message: fmt.Sprintf("Must be at least %d characters", AuthorMinLength),
		})
	}
	if n > AuthorMaxLength {
		errs = append(errs, FieldError{
			Field:   FieldAuthor,
			Rule:    RuleMaxLength,
			Message: fmt.Sprintf("Must be %d characters or less", AuthorMaxLength),
		})
	}

	return errs
}

// ValidateCommentInput validates a full submission. Only the author field
// carries user-facing rules; rating must already be a valid enumeration value.
func ValidateCommentInput(in model.CommentInput) (FieldErrors, error) {
	if !in.Rating.Valid() {
		return nil, fmt.Errorf("validate comment: %w", model.ErrInvalidRating)
	}
	return ValidateAuthor(in.Author), nil
}

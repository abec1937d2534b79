package web

import (
	"time"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// commentDateLayout is the en-US short date: short month, 2-digit day,
// numeric year.
const commentDateLayout = "Jan 02, 2006"

// FormatCommentDate renders a comment timestamp as e.g. "Mar 05, 2021".
// The calendar date is taken in UTC. Dates stay en-US in every UI language.
func FormatCommentDate(t time.Time) string {
	return t.UTC().Format(commentDateLayout)
}

// FormatDate parses an ISO-8601 timestamp string and formats it like
// FormatCommentDate. Unparseable input is returned unchanged.
func FormatDate(raw string) string {
	t, err := model.ParseTimestamp(raw)
	if err != nil {
		return raw
	}
	return FormatCommentDate(t)
}

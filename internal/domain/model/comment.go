package model

import "time"

// Comment is a user-submitted rating and remark attached to a campsite.
// Providers return comments in insertion order, which is treated as chronological.
type Comment struct {
	ID         int64
	CampsiteID int64
	Rating     Rating
	Text       string
	Author     string
	Date       time.Time
}

// CommentInput holds the values collected by the comment form for a single
// submission. It is discarded once the submission is dispatched or the form
// is dismissed.
type CommentInput struct {
	CampsiteID int64
	Rating     Rating
	Author     string
	Text       string
}

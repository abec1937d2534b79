package driven

import (
	"context"
	"errors"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
)

// ErrCampsiteNotFound indicates a comment referenced a campsite that does not exist.
var ErrCampsiteNotFound = errors.New("campsite not found")

// CommentStore defines the driven port for campsite comments.
// ListByCampsite returns comments in insertion order (ascending ID).
// Add assigns the comment ID and returns ErrCampsiteNotFound if the parent
// campsite does not exist.
type CommentStore interface {
	ListByCampsite(ctx context.Context, campsiteID int64) ([]model.Comment, error)
	Add(ctx context.Context, comment model.Comment) (model.Comment, error)
}

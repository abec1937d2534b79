package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

// CommentService is the postComment side of the data provider: it stamps and
// stores accepted comments.
type CommentService struct {
	commentStore driven.CommentStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewCommentService creates a CommentService backed by the given store.
func NewCommentService(commentStore driven.CommentStore, logger *slog.Logger) *CommentService {
	return &CommentService{
		commentStore: commentStore,
		logger:       logger,
		now:          time.Now,
	}
}

// PostComment implements CommentPoster by delegating to AddComment.
func (s *CommentService) PostComment(ctx context.Context, campsiteID int64, rating model.Rating, author, text string) error {
	_, err := s.AddComment(ctx, model.CommentInput{
		CampsiteID: campsiteID,
		Rating:     rating,
		Author:     author,
		Text:       text,
	})
	return err
}

// AddComment validates the input, stamps the current UTC time and stores the
// comment. Validation failures wrap ErrInvalidComment with the FieldErrors.
func (s *CommentService) AddComment(ctx context.Context, in model.CommentInput) (model.Comment, error) {
	fieldErrs, err := ValidateCommentInput(in)
	if err != nil {
		return model.Comment{}, fmt.Errorf("%w: %w", ErrInvalidComment, err)
	}
	if len(fieldErrs) > 0 {
		return model.Comment{}, fmt.Errorf("%w: %w", ErrInvalidComment, fieldErrs)
	}

	stored, err := s.commentStore.Add(ctx, model.Comment{
		CampsiteID: in.CampsiteID,
		Rating:     in.Rating,
		Author:     strings.TrimSpace(in.Author),
		Text:       in.Text,
		Date:       s.now().UTC(),
	})
	if err != nil {
		return model.Comment{}, fmt.Errorf("add comment: %w", err)
	}

	s.logger.Info("comment posted",
		"campsite_id", stored.CampsiteID,
		"comment_id", stored.ID,
		"rating", int(stored.Rating),
	)

	return stored, nil
}

// ListComments returns the comments for a campsite in provider order.
func (s *CommentService) ListComments(ctx context.Context, campsiteID int64) ([]model.Comment, error) {
	comments, err := s.commentStore.ListByCampsite(ctx, campsiteID)
	if err != nil {
		return nil, fmt.Errorf("list comments for campsite %d: %w", campsiteID, err)
	}
	return comments, nil
}

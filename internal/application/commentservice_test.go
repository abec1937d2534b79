package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/nucampsite/internal/application"
	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

func TestCommentService_AddComment(t *testing.T) {
	store := &mockCommentStore{}
	svc := application.NewCommentService(store, discardLogger())

	before := time.Now().UTC()
	got, err := svc.AddComment(context.Background(), model.CommentInput{
		CampsiteID: 2,
		Rating:     4,
		Author:     "  Al ",
		Text:       "Great spot",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(2), got.CampsiteID)
	assert.Equal(t, model.Rating(4), got.Rating)
	assert.Equal(t, "Al", got.Author)
	assert.Equal(t, "Great spot", got.Text)
	assert.False(t, got.Date.Before(before.Truncate(time.Second)))
	assert.Equal(t, time.UTC, got.Date.Location())
}

func TestCommentService_AddCommentInvalidAuthor(t *testing.T) {
	store := &mockCommentStore{}
	svc := application.NewCommentService(store, discardLogger())

	_, err := svc.AddComment(context.Background(), model.CommentInput{CampsiteID: 2, Rating: 4, Author: "A"})

	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrInvalidComment)

	var fieldErrs application.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{"Must be at least 2 characters"}, fieldErrs.Messages())
	assert.Empty(t, store.added)
}

func TestCommentService_AddCommentInvalidRating(t *testing.T) {
	svc := application.NewCommentService(&mockCommentStore{}, discardLogger())

	_, err := svc.AddComment(context.Background(), model.CommentInput{CampsiteID: 2, Rating: 6, Author: "Al"})

	assert.ErrorIs(t, err, application.ErrInvalidComment)
	assert.ErrorIs(t, err, model.ErrInvalidRating)
}

func TestCommentService_PostCommentStoreError(t *testing.T) {
	svc := application.NewCommentService(&mockCommentStore{addErr: driven.ErrCampsiteNotFound}, discardLogger())

	err := svc.PostComment(context.Background(), 99, 3, "Al", "")

	assert.ErrorIs(t, err, driven.ErrCampsiteNotFound)
}

func TestCommentService_ListComments(t *testing.T) {
	store := &mockCommentStore{comments: []model.Comment{{ID: 1}, {ID: 2}}}
	svc := application.NewCommentService(store, discardLogger())

	got, err := svc.ListComments(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	store.listErr = errors.New("boom")
	_, err = svc.ListComments(context.Background(), 1)
	assert.Error(t, err)
}

func TestCommentService_SatisfiesCommentPoster(t *testing.T) {
	var _ application.CommentPoster = application.NewCommentService(&mockCommentStore{}, discardLogger())
}

package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

func TestCommentRepo_ListByCampsiteOrder(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)
	repo := NewCommentRepo(db)

	comments, err := repo.ListByCampsite(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	// Insertion order, not date order.
	assert.Equal(t, "Tinus", comments[0].Author)
	assert.Equal(t, "Jonas", comments[1].Author)
	assert.Equal(t, model.Rating(5), comments[0].Rating)
	assert.True(t, comments[0].Date.Equal(time.Date(2018, 10, 25, 16, 30, 0, 0, time.UTC)))
}

func TestCommentRepo_ListByCampsiteEmpty(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)
	repo := NewCommentRepo(db)

	comments, err := repo.ListByCampsite(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestCommentRepo_AddAppends(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)
	repo := NewCommentRepo(db)
	ctx := context.Background()

	date := time.Date(2021, 3, 5, 12, 0, 0, 0, time.UTC)
	stored, err := repo.Add(ctx, model.Comment{CampsiteID: 0, Rating: 4, Author: "Al", Text: "Great spot", Date: date})
	require.NoError(t, err)
	assert.Greater(t, stored.ID, int64(1))

	comments, err := repo.ListByCampsite(ctx, 0)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	last := comments[2]
	assert.Equal(t, stored.ID, last.ID)
	assert.Equal(t, "Al", last.Author)
	assert.Equal(t, "Great spot", last.Text)
	assert.True(t, last.Date.Equal(date))
}

func TestCommentRepo_AddUnknownCampsite(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)
	repo := NewCommentRepo(db)

	_, err := repo.Add(context.Background(), model.Comment{CampsiteID: 42, Rating: 3, Author: "Al"})
	require.Error(t, err)
	assert.ErrorIs(t, err, driven.ErrCampsiteNotFound)
}

func TestCommentRepo_AddRejectsOutOfRangeRating(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)
	repo := NewCommentRepo(db)

	_, err := repo.Add(context.Background(), model.Comment{CampsiteID: 0, Rating: 9, Author: "Al"})
	assert.Error(t, err, "CHECK constraint should reject rating 9")
}

package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/nucampsite/internal/domain/model"
	"github.com/ericfisherdev/nucampsite/internal/domain/port/driven"
)

func TestSeedRepo_SeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSeedRepo(db)
	ctx := context.Background()

	seeded, err := repo.Seed(ctx, testSeed())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = repo.Seed(ctx, testSeed())
	require.NoError(t, err)
	assert.False(t, seeded)

	campsites, err := NewCampsiteRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, campsites, 2)
}

func TestSeedRepo_RollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSeedRepo(db)
	ctx := context.Background()

	data := testSeed()
	// Comment for a campsite that does not exist violates the foreign key.
	data.Comments = append(data.Comments, model.Comment{ID: 9, CampsiteID: 77, Rating: 3, Author: "Ghost"})

	_, err := repo.Seed(ctx, data)
	require.Error(t, err)

	campsites, err := NewCampsiteRepo(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, campsites)
}

func TestSeedRepo_EmptyData(t *testing.T) {
	db := setupTestDB(t)

	seeded, err := NewSeedRepo(db).Seed(context.Background(), driven.SeedData{})
	require.NoError(t, err)
	assert.True(t, seeded)
}

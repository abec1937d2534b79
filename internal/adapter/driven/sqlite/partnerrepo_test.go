package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerRepo_List(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)

	partners, err := NewPartnerRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, partners, 2)
	assert.Equal(t, "Bootstrap Outfitters", partners[0].Name)
	assert.True(t, partners[1].Featured)
}

func TestPromotionRepo_List(t *testing.T) {
	db := setupTestDB(t)
	seedTestDB(t, db)

	promotions, err := NewPromotionRepo(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, promotions, 1)
	assert.Equal(t, "Mountain Adventure", promotions[0].Name)
	assert.Equal(t, 1299, promotions[0].Cost)
	assert.True(t, promotions[0].Featured)
}

package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_IsRepeatable(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RunMigrations(db.Writer))

	version, dirty, err := MigrationVersion(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)
}

func TestRollbackMigrations(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, RollbackMigrations(db.Writer, 1))

	version, _, err := MigrationVersion(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	require.NoError(t, RunMigrations(db.Writer))
	version, _, err = MigrationVersion(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
}

func TestRollbackMigrations_InvalidSteps(t *testing.T) {
	db := setupTestDB(t)
	assert.Error(t, RollbackMigrations(db.Writer, 0))
}

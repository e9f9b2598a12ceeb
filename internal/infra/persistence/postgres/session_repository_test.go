package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSessionRepository_CountSessionOutcomes_ReadsPrimary(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewSessionRepository(db)
	userID := uuid.New()

	_, _, err := repo.CountSessionOutcomes(context.Background(), userID)
	require.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)

	assert.True(t, captured.primary)
	assert.False(t, captured.replica)
	assert.NotContains(t, captured.sql, "@user")
	assert.Contains(t, captured.vars, userID)
}

func TestSessionRepository_CountSessionOutcomesFor_GroupsOnPrimary(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewSessionRepository(db)
	a, b := uuid.New(), uuid.New()

	_, err := repo.CountSessionOutcomesFor(context.Background(), []uuid.UUID{a, b})
	require.ErrorIs(t, err, gorm.ErrDryRunModeUnsupported)

	assert.True(t, captured.primary)
	assert.False(t, captured.replica)
	assert.Contains(t, captured.sql, "IN ($1,$2)")
	assert.Contains(t, captured.sql, "GROUP BY p.user_id")
	assert.Equal(t, []any{a, b}, captured.vars)
}

func TestSessionRepository_CountSessionOutcomesFor_NoUsers(t *testing.T) {
	db, captured := newDryRunDB(t)

	got, err := NewSessionRepository(db).CountSessionOutcomesFor(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, captured.sql)
}

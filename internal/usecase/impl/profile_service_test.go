package impl

import (
	"context"
	"testing"

	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_UpdateProfile_CreatesThenUpdates(t *testing.T) {
	store := newMemStore()
	service := NewProfileService(&memProfileRepo{store}, discardLogger())

	ctx := context.Background()
	userID := uuid.New()
	seeking, resting := true, false

	created, err := service.UpdateProfile(ctx, userID, &usecase.ProfileInput{
		DisplayName:     "Sam",
		ExperienceLevel: entity.ExperienceIntermediate,
		IsSeeking:       &seeking,
	})
	require.NoError(t, err)
	assert.True(t, created.IsSeeking)
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := service.UpdateProfile(ctx, userID, &usecase.ProfileInput{
		DisplayName:     "Sam R.",
		ExperienceLevel: entity.ExperienceAdvanced,
		IsSeeking:       &resting,
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	got, err := service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Sam R.", got.DisplayName)
	assert.Equal(t, entity.ExperienceAdvanced, got.ExperienceLevel)
	assert.False(t, got.IsSeeking)
}

func TestProfileService_UpdateProfile_Invalid(t *testing.T) {
	service := NewProfileService(&memProfileRepo{newMemStore()}, discardLogger())

	_, err := service.UpdateProfile(context.Background(), uuid.New(), &usecase.ProfileInput{
		DisplayName:     "Sam",
		ExperienceLevel: "expert",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	service := NewProfileService(&memProfileRepo{newMemStore()}, discardLogger())

	_, err := service.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

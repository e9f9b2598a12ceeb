package repository

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when a user has no wingman profile.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists the matching-relevant part of user profiles.
type ProfileRepository interface {
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.WingmanProfile, error)
	FindProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.WingmanProfile, error)
	UpsertProfile(ctx context.Context, profile *entity.WingmanProfile) error

	// IncrementCompletedSessions adds one to each user's completed session counter.
	IncrementCompletedSessions(ctx context.Context, userIDs ...uuid.UUID) error
}

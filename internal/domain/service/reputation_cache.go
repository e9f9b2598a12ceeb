package service

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCacheMiss is returned by ReputationCache.Get when no entry exists.
var ErrCacheMiss = errors.New("cache miss")

// ReputationCache stores derived reputation records with a TTL.
type ReputationCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*entity.Reputation, error)

	// GetMany reads many entries in one round trip. Misses are absent from the result;
	// an error means the backend itself failed.
	GetMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Reputation, error)

	Set(ctx context.Context, rep *entity.Reputation) error

	// SetMany writes many entries in one round trip.
	SetMany(ctx context.Context, reps []*entity.Reputation) error

	Delete(ctx context.Context, userIDs ...uuid.UUID) error
}

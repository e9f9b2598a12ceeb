package usecase

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
)

// ReputationUsecase reads cached reputation with direct computation as fallback.
type ReputationUsecase interface {
	GetReputation(ctx context.Context, userID uuid.UUID) (*entity.Reputation, error)

	// GetReputations resolves many users with one cache round trip and one grouped
	// count for the misses. Every requested user is present in the result.
	GetReputations(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*entity.Reputation, error)

	// Invalidate is best effort; failures are logged, never returned.
	Invalidate(ctx context.Context, userIDs ...uuid.UUID)
}

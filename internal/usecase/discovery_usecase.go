package usecase

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscoveryUsecase finds ranked, compatible candidates for a searcher.
type DiscoveryUsecase interface {
	// FindCandidates returns candidates ordered by distance, then reputation, then
	// time spent waiting. Users in exclude are skipped. An empty slice means no
	// candidates are available; it is not an error.
	FindCandidates(ctx context.Context, userID uuid.UUID, exclude map[uuid.UUID]struct{}) ([]*entity.Candidate, error)
}

package usecase

import (
	"context"

	"github.com/google/uuid"
)

// BlockUsecase manages the caller's block list.
type BlockUsecase interface {
	BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error
	UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error
}

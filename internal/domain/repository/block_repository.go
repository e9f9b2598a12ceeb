package repository

import (
	"context"

	"github.com/google/uuid"
)

// BlockRepository persists user blocks.
type BlockRepository interface {
	// CreateBlock records a block; repeating an existing block is a no-op.
	CreateBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error
	DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error

	// ExistsEitherDirection reports whether either user blocked the other.
	ExistsEitherDirection(ctx context.Context, a, b uuid.UUID) (bool, error)

	// FindBlockedWith returns every user that blocked or was blocked by userID.
	FindBlockedWith(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// Package block answers block-list questions for candidate discovery.
package block

import (
	"context"

	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/errors"

	"github.com/google/uuid"
)

type blockList struct {
	blocks repository.BlockRepository
}

// NewBlockList returns a BlockList over the user_blocks table.
func NewBlockList(blocks repository.BlockRepository) service.BlockList {
	return &blockList{blocks: blocks}
}

// IsBlocked is true when either user has blocked the other.
func (b *blockList) IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error) {
	blocked, err := b.blocks.ExistsEitherDirection(ctx, userA, userB)
	if err != nil {
		return false, errors.Wrap(err, "check block")
	}

	return blocked, nil
}

func (b *blockList) BlockedWith(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	ids, err := b.blocks.FindBlockedWith(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load block list")
	}

	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set, nil
}

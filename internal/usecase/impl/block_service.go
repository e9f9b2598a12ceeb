package impl

import (
	"context"
	"log/slog"

	deliverycontext "wingman/internal/delivery/context"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
)

type blockService struct {
	blocks repository.BlockRepository
	logger *slog.Logger
}

// NewBlockService is the constructor for blockService.
func NewBlockService(blocks repository.BlockRepository, logger *slog.Logger) usecase.BlockUsecase {
	return &blockService{blocks: blocks, logger: logger}
}

// BlockUser hides the two users from each other's discovery. Repeating it is a no-op.
func (srv *blockService) BlockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if blockerID == blockedID {
		return domainerrors.ErrCannotBlockSelf
	}

	if err := srv.blocks.CreateBlock(ctx, blockerID, blockedID); err != nil {
		return errors.Wrap(err, "failed to block user")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("User blocked",
		slog.String("blocker_id", blockerID.String()),
		slog.String("blocked_id", blockedID.String()),
	)

	return nil
}

func (srv *blockService) UnblockUser(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if err := srv.blocks.DeleteBlock(ctx, blockerID, blockedID); err != nil {
		return errors.Wrap(err, "failed to unblock user")
	}

	return nil
}

package repository

import (
	"context"

	"wingman/internal/domain/entity"
)

// ChatChannelRepository persists provisioned channels, one per match.
type ChatChannelRepository interface {
	// CreateOrGetChannel inserts the channel unless one exists for the match,
	// and returns the stored row either way.
	CreateOrGetChannel(ctx context.Context, channel *entity.ChatChannel) (*entity.ChatChannel, error)
}

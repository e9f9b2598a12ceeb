// Package chat provisions the chat channel of a mutually accepted match.
package chat

import (
	"context"
	"log/slog"
	"time"

	"wingman/internal/domain/entity"
	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/errors"

	"github.com/google/uuid"
)

type provisioner struct {
	channels repository.ChatChannelRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewProvisioner returns a ChatProvisioner backed by the chat_channels table.
func NewProvisioner(channels repository.ChatChannelRepository, logger *slog.Logger) service.ChatProvisioner {
	return &provisioner{
		channels: channels,
		logger:   logger,
		now:      time.Now,
	}
}

// ProvisionChannel is keyed by match ID; replays return the existing channel.
func (p *provisioner) ProvisionChannel(ctx context.Context, matchID, userA, userB uuid.UUID) (*entity.ChatChannel, error) {
	a, b := entity.CanonicalPair(userA, userB)
	channel, err := p.channels.CreateOrGetChannel(ctx, &entity.ChatChannel{
		ID:        uuid.New(),
		MatchID:   matchID,
		UserAID:   a,
		UserBID:   b,
		CreatedAt: p.now().UTC(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "provision channel for match %s", matchID)
	}

	p.logger.Debug("Chat channel ready",
		slog.String("match_id", matchID.String()),
		slog.String("channel_id", channel.ID.String()),
	)

	return channel, nil
}

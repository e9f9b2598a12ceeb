// Package service defines interfaces for collaborators the matching core depends on.
// Implementations live in the infra layer.
package service

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
)

// Notifier informs participants about engagement changes. Calls are fire-and-forget
// from the state machine's point of view: errors are logged by callers, never propagated.
type Notifier interface {
	NotifyMatchAccepted(ctx context.Context, match *entity.WingmanMatch) error
	NotifyMatchDeclined(ctx context.Context, match *entity.WingmanMatch, declinedBy uuid.UUID) error
	NotifySessionScheduled(ctx context.Context, match *entity.WingmanMatch, session *entity.WingmanSession) error
}

// ChatProvisioner opens the conversation for a mutually accepted match.
// Provisioning the same match twice returns the existing channel.
type ChatProvisioner interface {
	ProvisionChannel(ctx context.Context, matchID, userA, userB uuid.UUID) (*entity.ChatChannel, error)
}

// BlockList answers whether two users refuse to be paired.
type BlockList interface {
	IsBlocked(ctx context.Context, userA, userB uuid.UUID) (bool, error)

	// BlockedWith returns every user blocked by or blocking userID.
	BlockedWith(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

package repository

import (
	"context"
	"time"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for match persistence.
var (
	// ErrMatchNotFound is returned when a match is not found.
	ErrMatchNotFound = errors.New("match not found")
	// ErrDuplicateMatch is returned when the pair already has a match row.
	ErrDuplicateMatch = errors.New("match already exists for pair")
)

// ResponseUpdate describes one participant's conditional response write.
type ResponseUpdate struct {
	MatchID uuid.UUID
	Side    entity.MatchSide
	Action  entity.MatchAction
	Now     time.Time
}

// MatchRepository persists matches. Every state change is a compare-and-set on status.
type MatchRepository interface {
	// CreateMatch inserts a pending match. Returns ErrDuplicateMatch when the pair exists.
	CreateMatch(ctx context.Context, match *entity.WingmanMatch) error

	FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.WingmanMatch, error)

	// FindMatchesByUser lists the user's matches, newest first.
	FindMatchesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WingmanMatch, error)

	// RecordResponse sets the side's responder status only if the match is still pending,
	// unexpired and that side has not answered. A decline moves status to declined; an
	// accept moves it to accepted when the other side already accepted. The returned match
	// is the row after the write; applied is false when the condition did not hold.
	RecordResponse(ctx context.Context, update ResponseUpdate) (match *entity.WingmanMatch, applied bool, err error)

	// ExpireMatch moves a pending match past its deadline to expired.
	ExpireMatch(ctx context.Context, id uuid.UUID, now time.Time) (applied bool, err error)

	// FindExpiredPending lists pending matches whose deadline is before now.
	FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]*entity.WingmanMatch, error)

	// MarkSideEffectsDispatched stamps an accepted match whose stamp is still empty.
	MarkSideEffectsDispatched(ctx context.Context, id uuid.UUID, at time.Time) (applied bool, err error)

	// FindUndispatchedAccepted lists accepted matches never stamped, last updated before cutoff.
	FindUndispatchedAccepted(ctx context.Context, cutoff time.Time, limit int) ([]*entity.WingmanMatch, error)
}

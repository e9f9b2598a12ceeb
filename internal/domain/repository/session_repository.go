package repository

import (
	"context"
	"time"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrActiveSessionExists is returned when the match already has a non-terminal session.
	ErrActiveSessionExists = errors.New("active session exists for match")
)

// StatusTransition is a conditional session status change.
type StatusTransition struct {
	SessionID    uuid.UUID
	From         []entity.SessionStatus
	To           entity.SessionStatus
	NoShowUserID *uuid.UUID
	Now          time.Time
}

// SessionRepository persists wingman sessions.
type SessionRepository interface {
	// CreateSession inserts a scheduled session. Returns ErrActiveSessionExists when
	// the match already owns a non-terminal session.
	CreateSession(ctx context.Context, session *entity.WingmanSession) error

	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.WingmanSession, error)

	// FindActiveSessionByMatch returns the match's non-terminal session.
	FindActiveSessionByMatch(ctx context.Context, matchID uuid.UUID) (*entity.WingmanSession, error)

	// SetConfirmation raises the side's confirmation flag on a non-terminal session.
	// applied is false when the flag was already set or the session is terminal.
	SetConfirmation(ctx context.Context, sessionID uuid.UUID, side entity.MatchSide, now time.Time) (applied bool, err error)

	// CompleteIfConfirmed moves a non-terminal session to completed when both flags are
	// set and the scheduled time has passed. Exactly one caller observes applied.
	CompleteIfConfirmed(ctx context.Context, sessionID uuid.UUID, now time.Time) (session *entity.WingmanSession, applied bool, err error)

	// TransitionStatus moves a session whose status is in From to To.
	TransitionStatus(ctx context.Context, transition StatusTransition) (session *entity.WingmanSession, applied bool, err error)

	// CountSessionOutcomes counts the user's completed sessions and the no-shows attributed to them.
	CountSessionOutcomes(ctx context.Context, userID uuid.UUID) (completed, noShows int, err error)

	// CountSessionOutcomesFor counts outcomes for many users at once. Users with no
	// history may be absent from the result.
	CountSessionOutcomesFor(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]SessionOutcomeCounts, error)
}

// SessionOutcomeCounts is one user's reputation input.
type SessionOutcomeCounts struct {
	Completed int
	NoShows   int
}

package usecase

import (
	"context"
	"time"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSessionInput schedules a session under an accepted match.
type CreateSessionInput struct {
	MatchID       uuid.UUID
	UserID        uuid.UUID
	VenueName     string
	ScheduledTime time.Time
	Notes         string
}

// ConfirmResult is returned by ConfirmCompletion.
type ConfirmResult struct {
	Session *entity.WingmanSession `json:"session"`

	// AlreadyConfirmed is set when the caller had confirmed before this call.
	AlreadyConfirmed bool `json:"already_confirmed"`

	// Completed is set when the session is completed after this call.
	Completed bool `json:"completed"`
}

// SessionUsecase drives the scheduled -> completed/cancelled/no_show state machine.
type SessionUsecase interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*entity.WingmanSession, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error)

	// ConfirmCompletion records the caller's confirmation and completes the
	// session once both participants confirmed after the scheduled time.
	ConfirmCompletion(ctx context.Context, userID, sessionID uuid.UUID) (*ConfirmResult, error)

	// CompleteSession completes a session whose confirmations are both present.
	CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error)

	StartSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error)
	CancelSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error)

	// ReportNoShow marks the caller's partner as absent.
	ReportNoShow(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error)

	// GenerateCheckInQR renders a PNG the partner scans to confirm.
	GenerateCheckInQR(ctx context.Context, userID, sessionID uuid.UUID) ([]byte, error)

	// ConfirmByQR confirms completion for the scanning user.
	ConfirmByQR(ctx context.Context, userID uuid.UUID, qrData string) (*ConfirmResult, error)
}

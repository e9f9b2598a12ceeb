package usecase

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchRequest asks discovery for a new pending match.
type MatchRequest struct {
	UserID uuid.UUID
	// IdempotencyKey makes client retries return the first request's outcome. Optional.
	IdempotencyKey string
}

// MatchOutcome is the result of creating a match. NoCandidates is set instead of
// Match when discovery found nobody.
type MatchOutcome struct {
	Match        *entity.WingmanMatch `json:"match,omitempty"`
	Candidate    *entity.Candidate    `json:"candidate,omitempty"`
	NoCandidates bool                 `json:"no_candidates"`
	Replayed     bool                 `json:"replayed,omitempty"`
}

// RespondInput is one participant's answer to a pending match.
type RespondInput struct {
	MatchID uuid.UUID
	UserID  uuid.UUID
	Action  entity.MatchAction
}

// RespondResult carries the match after the response was applied.
type RespondResult struct {
	Match *entity.WingmanMatch `json:"match"`

	// AlreadyHandled is set when the same action was replayed and nothing changed.
	AlreadyHandled bool `json:"already_handled"`

	// MutualAccept is set only on the single response that completed mutual acceptance.
	MutualAccept bool `json:"mutual_accept"`

	// Replacement is the decliner's new pending match, if discovery found one.
	Replacement *MatchOutcome `json:"replacement,omitempty"`
}

// MatchUsecase drives the pending -> accepted/declined/expired state machine.
type MatchUsecase interface {
	RequestMatch(ctx context.Context, req MatchRequest) (*MatchOutcome, error)
	Respond(ctx context.Context, input RespondInput) (*RespondResult, error)
	GetMatch(ctx context.Context, userID, matchID uuid.UUID) (*entity.WingmanMatch, error)
	ListMatches(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WingmanMatch, error)
}

// SweepReport summarizes one sweeper pass.
type SweepReport struct {
	Expired      int
	Rematched    int
	Redispatched int
}

// SweeperUsecase runs the background maintenance of the match state machine.
type SweeperUsecase interface {
	// Sweep expires stale pending matches, offers replacements to participants
	// still seeking, and re-publishes accepted matches whose side effects were
	// never confirmed dispatched.
	Sweep(ctx context.Context) (*SweepReport, error)
}

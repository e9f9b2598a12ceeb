package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of a WingmanSession.
type SessionStatus string

const (
	SessionStatusScheduled  SessionStatus = "scheduled"
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
	SessionStatusNoShow     SessionStatus = "no_show"
)

// IsTerminal reports whether no further transition is possible.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled || s == SessionStatusNoShow
}

// WingmanSession is an in-person meetup planned under an accepted match.
type WingmanSession struct {
	ID            uuid.UUID     `json:"id"`
	MatchID       uuid.UUID     `json:"match_id"`
	CreatedBy     uuid.UUID     `json:"created_by"`
	VenueName     string        `json:"venue_name"`
	ScheduledTime time.Time     `json:"scheduled_time"`
	Status        SessionStatus `json:"status"`
	ConfirmedByA  bool          `json:"confirmed_by_a"`
	ConfirmedByB  bool          `json:"confirmed_by_b"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"` // set once, at the completed transition
	NoShowUserID  *uuid.UUID    `json:"no_show_user_id,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// HasStarted reports whether the scheduled time has passed.
func (s *WingmanSession) HasStarted(now time.Time) bool {
	return !now.Before(s.ScheduledTime)
}

// IsConfirmedBy returns the confirmation flag for a match side.
func (s *WingmanSession) IsConfirmedBy(side MatchSide) bool {
	if side == SideA {
		return s.ConfirmedByA
	}

	return s.ConfirmedByB
}

// BothConfirmed reports whether both participants attested completion.
func (s *WingmanSession) BothConfirmed() bool {
	return s.ConfirmedByA && s.ConfirmedByB
}

// ParticipantSession pairs a session with the match that owns it.
type ParticipantSession struct {
	Session *WingmanSession
	Match   *WingmanMatch
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// EngagementEvent is published after a committed match or session transition
// and consumed by the side-effect worker.
type EngagementEvent struct {
	Type       string     `json:"type"`
	MatchID    uuid.UUID  `json:"match_id"`
	SessionID  *uuid.UUID `json:"session_id,omitempty"`
	UserAID    uuid.UUID  `json:"user_a_id"`
	UserBID    uuid.UUID  `json:"user_b_id"`
	ActorID    uuid.UUID  `json:"actor_id"`
	VenueName  string     `json:"venue_name,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

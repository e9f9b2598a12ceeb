package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatChannel is the conversation provisioned for a mutually accepted match.
type ChatChannel struct {
	ID        uuid.UUID `json:"id"`
	MatchID   uuid.UUID `json:"match_id"`
	UserAID   uuid.UUID `json:"user_a_id"`
	UserBID   uuid.UUID `json:"user_b_id"`
	CreatedAt time.Time `json:"created_at"`
}

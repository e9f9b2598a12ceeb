package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserBlock records that BlockerID does not want to be paired with BlockedID.
type UserBlock struct {
	BlockerID uuid.UUID `json:"blocker_id"`
	BlockedID uuid.UUID `json:"blocked_id"`
	CreatedAt time.Time `json:"created_at"`
}

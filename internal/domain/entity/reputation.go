package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reputation score bounds.
const (
	MinReputationScore = -5
	MaxReputationScore = 20
)

// BadgeColor is the display tier derived from a score.
type BadgeColor string

const (
	BadgeGold  BadgeColor = "gold"
	BadgeGreen BadgeColor = "green"
	BadgeRed   BadgeColor = "red"
)

// Reputation is the derived record computed from a user's session outcomes.
type Reputation struct {
	UserID            uuid.UUID  `json:"user_id"`
	Score             int        `json:"score"`
	CompletedSessions int        `json:"completed_sessions"`
	NoShows           int        `json:"no_shows"`
	BadgeColor        BadgeColor `json:"badge_color"`
	AsOf              time.Time  `json:"as_of"`
}

// ReputationScore clamps completed minus no-shows into the supported range.
func ReputationScore(completed, noShows int) int {
	return min(max(completed-noShows, MinReputationScore), MaxReputationScore)
}

// BadgeFor maps a score to its badge.
func BadgeFor(score int) BadgeColor {
	switch {
	case score >= 10:
		return BadgeGold
	case score >= 0:
		return BadgeGreen
	default:
		return BadgeRed
	}
}

// NewReputation derives the full record from raw counts.
func NewReputation(userID uuid.UUID, completed, noShows int, asOf time.Time) *Reputation {
	score := ReputationScore(completed, noShows)

	return &Reputation{
		UserID:            userID,
		Score:             score,
		CompletedSessions: completed,
		NoShows:           noShows,
		BadgeColor:        BadgeFor(score),
		AsOf:              asOf,
	}
}

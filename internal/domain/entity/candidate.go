package entity

import (
	"time"

	"github.com/google/uuid"
)

// CandidateRow is one pool entry as returned by the geo index. Coordinates are
// nil unless the candidate's privacy mode is precise.
type CandidateRow struct {
	Location         UserLocation
	ExperienceLevel  ExperienceLevel
	DisplayName      string
	ProfileCreatedAt time.Time
}

// Candidate is a ranked discovery result.
type Candidate struct {
	UserID           uuid.UUID       `json:"user_id"`
	DisplayName      string          `json:"display_name"`
	City             string          `json:"city"`
	DistanceMiles    float64         `json:"distance_miles"`
	DistanceIsProxy  bool            `json:"distance_is_proxy"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	ExperienceMatch  ExperienceMatch `json:"experience_match"`
	Reputation       int             `json:"reputation"`
	BadgeColor       BadgeColor      `json:"badge_color"`
	ProfileCreatedAt time.Time       `json:"-"`
}

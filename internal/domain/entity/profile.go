// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceLevel describes how practiced a user is at social approaches.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// ExperienceMatch annotates how two experience levels relate.
type ExperienceMatch string

const (
	// ExperienceMatchSame means both users share a level.
	ExperienceMatchSame ExperienceMatch = "same"
	// ExperienceMatchAdjacent means the levels are one step apart.
	ExperienceMatchAdjacent ExperienceMatch = "adjacent"
	// ExperienceMatchNone means the levels are too far apart to pair.
	ExperienceMatchNone ExperienceMatch = "none"
)

// IsValid checks if the ExperienceLevel is a known value.
func (l ExperienceLevel) IsValid() bool {
	return l.rank() >= 0
}

// MatchRank places the level on the beginner=0 scale used for compatibility checks.
// Unknown levels rank as beginner.
func (l ExperienceLevel) MatchRank() int {
	return max(l.rank(), 0)
}

func (l ExperienceLevel) rank() int {
	switch l {
	case ExperienceBeginner:
		return 0
	case ExperienceIntermediate:
		return 1
	case ExperienceAdvanced:
		return 2
	default:
		return -1
	}
}

// CompareExperience returns the compatibility of two levels. Unknown levels are
// treated as beginner so that incomplete profiles remain matchable.
func CompareExperience(a, b ExperienceLevel) ExperienceMatch {
	ra, rb := a.MatchRank(), b.MatchRank()

	switch diff := ra - rb; {
	case diff == 0:
		return ExperienceMatchSame
	case diff == 1 || diff == -1:
		return ExperienceMatchAdjacent
	default:
		return ExperienceMatchNone
	}
}

// WingmanProfile holds the subset of a user's profile the matcher depends on.
type WingmanProfile struct {
	UserID            uuid.UUID       `json:"user_id"`
	DisplayName       string          `json:"display_name"`
	Email             string          `json:"-"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	IsSeeking         bool            `json:"is_seeking"`         // still looking for new wingmen
	CompletedSessions int             `json:"completed_sessions"` // incremented once per completed session
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

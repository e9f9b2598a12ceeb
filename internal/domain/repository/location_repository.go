// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a user has not set a location.
var ErrLocationNotFound = errors.New("location not found")

// CandidatePoolQuery bounds the geo index read for one searcher. Every compatibility
// rule is applied before Limit, so the limit never cuts valid candidates in favour of
// rows the caller would reject.
type CandidatePoolQuery struct {
	SearcherID         uuid.UUID
	SearcherCity       string // normalized
	SearcherExperience entity.ExperienceLevel

	// Latitude and Longitude are set only when the searcher exposes precise coordinates.
	Latitude  *float64
	Longitude *float64

	// MaxTravelDistance bounds rows with an exact distance; proxy distances always pass.
	MaxTravelDistance   int
	SameCityProxyMiles  float64
	OtherCityProxyMiles float64

	Exclude []uuid.UUID // users the caller has already ruled out
	Limit   int
}

// LocationRepository is the geo index.
type LocationRepository interface {
	// UpsertLocation stores the owner's location, replacing any previous record.
	UpsertLocation(ctx context.Context, location *entity.UserLocation) error

	// FindLocationByUserID returns the owner's own record, coordinates included.
	FindLocationByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)

	// FindCandidatePool returns seeking users eligible to be paired with the searcher,
	// nearest first. Self, hidden users, excluded users, either direction of a block,
	// anyone who ever shared a match row with the searcher, experience levels more than
	// one step apart and precise rows beyond the travel radius are filtered out.
	// Coordinates are withheld for rows that are not in precise mode.
	FindCandidatePool(ctx context.Context, query CandidatePoolQuery) ([]*entity.CandidateRow, error)
}

package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PrivacyMode controls how much of a user's location other users' queries may see.
type PrivacyMode string

const (
	// PrivacyPrecise exposes coordinates to distance computation.
	PrivacyPrecise PrivacyMode = "precise"
	// PrivacyCityOnly exposes only the city; distance becomes a coarse same-city proxy.
	PrivacyCityOnly PrivacyMode = "city_only"
	// PrivacyHidden removes the user from every candidate pool.
	PrivacyHidden PrivacyMode = "hidden"
)

// Travel distance bounds in miles.
const (
	MinTravelDistanceMiles = 5
	MaxTravelDistanceMiles = 100
)

// IsValid checks if the PrivacyMode is a known value.
func (m PrivacyMode) IsValid() bool {
	switch m {
	case PrivacyPrecise, PrivacyCityOnly, PrivacyHidden:
		return true
	default:
		return false
	}
}

// UserLocation is the geo index record owned by a single user.
type UserLocation struct {
	UserID            uuid.UUID   `json:"user_id"`
	Latitude          *float64    `json:"latitude,omitempty"`  // nil when hidden, or when read through another user's query in city_only mode
	Longitude         *float64    `json:"longitude,omitempty"` // see Latitude
	City              string      `json:"city"`                // always present as fallback
	PrivacyMode       PrivacyMode `json:"privacy_mode"`
	MaxTravelDistance int         `json:"max_travel_distance"` // miles, [MinTravelDistanceMiles, MaxTravelDistanceMiles]
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// HasCoordinates reports whether precise coordinates are usable for this record.
func (l *UserLocation) HasCoordinates() bool {
	return l.PrivacyMode == PrivacyPrecise && l.Latitude != nil && l.Longitude != nil
}

// SameCity compares cities case- and whitespace-insensitively.
func (l *UserLocation) SameCity(other *UserLocation) bool {
	return NormalizeCity(l.City) == NormalizeCity(other.City)
}

// NormalizeCity canonicalizes a city name for comparisons.
func NormalizeCity(city string) string {
	return strings.ToLower(CleanCity(city))
}

// CleanCity trims and collapses whitespace but keeps the caller's casing for display.
// Stored cities are cleaned, so lower(city) in SQL equals NormalizeCity.
func CleanCity(city string) string {
	return strings.Join(strings.Fields(city), " ")
}

// ClampTravelDistance bounds a travel radius to the supported range.
func ClampTravelDistance(miles int) int {
	return min(max(miles, MinTravelDistanceMiles), MaxTravelDistanceMiles)
}

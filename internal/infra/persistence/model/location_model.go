// Package model holds the GORM table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
type UserLocationModel struct {
	UserID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Latitude          *float64  `gorm:"type:double precision"`
	Longitude         *float64  `gorm:"type:double precision"`
	City              string    `gorm:"type:varchar(120);not null;index"`
	PrivacyMode       string    `gorm:"type:varchar(16);not null;default:'precise';index"`
	MaxTravelDistance int       `gorm:"not null;default:10;check:max_travel_distance BETWEEN 5 AND 100"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}

// CandidatePoolRow is the scan target of the candidate pool query.
type CandidatePoolRow struct {
	UserID            uuid.UUID
	Latitude          *float64
	Longitude         *float64
	City              string
	PrivacyMode       string
	MaxTravelDistance int
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ExperienceLevel   string
	DisplayName       string
	ProfileCreatedAt  time.Time
}

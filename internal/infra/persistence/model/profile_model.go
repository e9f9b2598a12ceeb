package model

import (
	"time"

	"github.com/google/uuid"
)

// WingmanProfileModel is the GORM-specific struct for the 'wingman_profiles' table.
type WingmanProfileModel struct {
	UserID            uuid.UUID `gorm:"type:uuid;primary_key"`
	DisplayName       string    `gorm:"type:varchar(80);not null;default:''"`
	Email             string    `gorm:"type:varchar(255);not null;default:''"`
	ExperienceLevel   string    `gorm:"type:varchar(16);not null;default:'beginner'"`
	IsSeeking         bool      `gorm:"not null"`
	CompletedSessions int       `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (WingmanProfileModel) TableName() string {
	return "wingman_profiles"
}

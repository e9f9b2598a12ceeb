package model

import (
	"time"

	"github.com/google/uuid"
)

// WingmanSessionModel is the GORM-specific struct for the 'wingman_sessions' table.
// The partial unique index allows one non-terminal session per match.
type WingmanSessionModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key"`
	MatchID       uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_wingman_sessions_active_match,where:status IN ('scheduled','in_progress')"`
	CreatedBy     uuid.UUID  `gorm:"type:uuid;not null"`
	VenueName     string     `gorm:"type:varchar(200);not null"`
	ScheduledTime time.Time  `gorm:"not null"`
	Status        string     `gorm:"type:varchar(16);not null"`
	ConfirmedByA  bool       `gorm:"column:confirmed_by_a;not null;default:false"`
	ConfirmedByB  bool       `gorm:"column:confirmed_by_b;not null;default:false"`
	CompletedAt   *time.Time
	NoShowUserID  *uuid.UUID `gorm:"type:uuid;index"`
	Notes         string     `gorm:"type:text;not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WingmanSessionModel) TableName() string {
	return "wingman_sessions"
}

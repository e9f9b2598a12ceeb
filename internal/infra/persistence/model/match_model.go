package model

import (
	"time"

	"github.com/google/uuid"
)

// WingmanMatchModel is the GORM-specific struct for the 'wingman_matches' table.
// The pair index makes (user_a_id, user_b_id) unique over the table's whole history.
type WingmanMatchModel struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key"`
	UserAID                 uuid.UUID `gorm:"column:user_a_id;type:uuid;not null;uniqueIndex:idx_wingman_matches_pair;check:user_a_id < user_b_id"`
	UserBID                 uuid.UUID `gorm:"column:user_b_id;type:uuid;not null;uniqueIndex:idx_wingman_matches_pair;index"`
	Status                  string    `gorm:"type:varchar(16);not null;index:idx_wingman_matches_status_expires"`
	ResponderAStatus        string    `gorm:"column:responder_a_status;type:varchar(16);not null"`
	ResponderBStatus        string    `gorm:"column:responder_b_status;type:varchar(16);not null"`
	ReputationSnapshotA     int       `gorm:"column:reputation_snapshot_a;not null"`
	ReputationSnapshotB     int       `gorm:"column:reputation_snapshot_b;not null"`
	SideEffectsDispatchedAt *time.Time
	CreatedAt               time.Time
	ExpiresAt               time.Time `gorm:"not null;index:idx_wingman_matches_status_expires"`
	UpdatedAt               time.Time
}

// TableName explicitly sets the table name for GORM.
func (WingmanMatchModel) TableName() string {
	return "wingman_matches"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserBlockModel is the GORM-specific struct for the 'user_blocks' table.
type UserBlockModel struct {
	BlockerID uuid.UUID `gorm:"type:uuid;primary_key"`
	BlockedID uuid.UUID `gorm:"type:uuid;primary_key;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserBlockModel) TableName() string {
	return "user_blocks"
}

// ChatChannelModel is the GORM-specific struct for the 'chat_channels' table.
type ChatChannelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	MatchID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	UserAID   uuid.UUID `gorm:"column:user_a_id;type:uuid;not null"`
	UserBID   uuid.UUID `gorm:"column:user_b_id;type:uuid;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatChannelModel) TableName() string {
	return "chat_channels"
}

// IdempotencyKeyModel is the GORM-specific struct for the 'idempotency_keys' table.
type IdempotencyKeyModel struct {
	UserID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:ux_idempotency_user_scope_key,priority:1"`
	Scope      string     `gorm:"type:varchar(32);not null;uniqueIndex:ux_idempotency_user_scope_key,priority:2"`
	Key        string     `gorm:"type:varchar(128);not null;uniqueIndex:ux_idempotency_user_scope_key,priority:3"`
	ResourceID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (IdempotencyKeyModel) TableName() string {
	return "idempotency_keys"
}

// All lists every table model for schema migration.
func All() []any {
	return []any{
		&UserLocationModel{},
		&WingmanProfileModel{},
		&WingmanMatchModel{},
		&WingmanSessionModel{},
		&UserBlockModel{},
		&ChatChannelModel{},
		&DeviceModel{},
		&IdempotencyKeyModel{},
	}
}

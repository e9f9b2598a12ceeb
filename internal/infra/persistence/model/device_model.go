package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel maps user_devices. (user_id, device_id) is the upsert conflict target.
type DeviceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_device"`
	DeviceID  string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device"`
	FCMToken  string         `gorm:"column:fcm_token;type:varchar(255);not null"`
	Platform  string         `gorm:"type:varchar(50);not null"`
	IsActive  bool           `gorm:"not null;default:true"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (DeviceModel) TableName() string {
	return "user_devices"
}

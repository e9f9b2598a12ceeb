package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform identifies the client OS a push token was issued for.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

// UserDevice is a push target registered by a user. Tokens the push provider
// reports as unregistered are deactivated, not deleted.
type UserDevice struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	FCMToken  string         `json:"fcm_token"`
	DeviceID  string         `json:"device_id"` // client-chosen, unique per user
	Platform  DevicePlatform `json:"platform"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewUserDevice builds an active registration.
func NewUserDevice(userID uuid.UUID, fcmToken, deviceID string, platform DevicePlatform, now time.Time) *UserDevice {
	return &UserDevice{
		UserID:    userID,
		FCMToken:  fcmToken,
		DeviceID:  deviceID,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// OwnedBy reports whether userID registered the device.
func (d *UserDevice) OwnedBy(userID uuid.UUID) bool {
	return d.UserID == userID
}

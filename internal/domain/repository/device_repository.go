package repository

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for push device persistence.
type DeviceRepository interface {
	// UpsertDevice registers a device, refreshing the token when the (user, device_id) pair exists.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveTokensForUsers returns the FCM tokens of every active device of the given users.
	FindActiveTokensForUsers(ctx context.Context, userIDs []uuid.UUID) ([]string, error)

	// DeactivateTokens marks devices holding the given tokens inactive.
	DeactivateTokens(ctx context.Context, tokens []string) error

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationInput is the owner's location update.
type LocationInput struct {
	Latitude          *float64           `json:"latitude" validate:"omitempty,latitude"`
	Longitude         *float64           `json:"longitude" validate:"omitempty,longitude"`
	City              string             `json:"city" validate:"required,max=120"`
	PrivacyMode       entity.PrivacyMode `json:"privacy_mode" validate:"required,oneof=precise city_only hidden"`
	MaxTravelDistance int                `json:"max_travel_distance" validate:"required,min=5,max=100"`
}

// LocationUsecase manages the caller's geo index record.
type LocationUsecase interface {
	UpdateLocation(ctx context.Context, userID uuid.UUID, input *LocationInput) (*entity.UserLocation, error)
	GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error)
}

package usecase

import (
	"context"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileInput updates the matching-relevant profile fields.
type ProfileInput struct {
	DisplayName     string                 `json:"display_name" validate:"required,max=80"`
	Email           string                 `json:"email" validate:"omitempty,email,max=255"`
	ExperienceLevel entity.ExperienceLevel `json:"experience_level" validate:"required,oneof=beginner intermediate advanced"`
	IsSeeking       *bool                  `json:"is_seeking" validate:"required"`
}

// ProfileUsecase manages the caller's wingman profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.WingmanProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *ProfileInput) (*entity.WingmanProfile, error)
}

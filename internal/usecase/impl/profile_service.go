package impl

import (
	"context"
	"log/slog"
	"time"

	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
)

type profileService struct {
	profiles repository.ProfileRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profiles repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.WingmanProfile, error) {
	srv.logger.Debug("Getting wingman profile", "userID", userID)

	profile, err := srv.profiles.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile creates the profile on first use and updates it afterwards.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.ProfileInput) (*entity.WingmanProfile, error) {
	srv.logger.Info("Updating wingman profile", "userID", userID)

	if !input.ExperienceLevel.IsValid() || input.IsSeeking == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("experience_level and is_seeking are required")
	}

	now := srv.now().UTC()
	profile, err := srv.profiles.FindProfileByUserID(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		profile = &entity.WingmanProfile{UserID: userID, CreatedAt: now}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile.DisplayName = input.DisplayName
	profile.Email = input.Email
	profile.ExperienceLevel = input.ExperienceLevel
	profile.IsSeeking = *input.IsSeeking
	profile.UpdatedAt = now

	if err := srv.profiles.UpsertProfile(ctx, profile); err != nil {
		srv.logger.Error("failed to update wingman profile", "error", err)

		return nil, errors.Wrap(err, "failed to upsert profile")
	}

	return profile, nil
}

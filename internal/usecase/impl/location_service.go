package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"github.com/google/uuid"
)

type locationService struct {
	txManager repository.TransactionManager
	locations repository.LocationRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewLocationService creates a new location service instance
func NewLocationService(txManager repository.TransactionManager, locations repository.LocationRepository, logger *slog.Logger) usecase.LocationUsecase {
	return &locationService{
		txManager: txManager,
		locations: locations,
		logger:    logger,
		now:       time.Now,
	}
}

// UpdateLocation replaces the caller's geo record. A profile with defaults is
// created first when the user has none yet.
func (s *locationService) UpdateLocation(ctx context.Context, userID uuid.UUID, input *usecase.LocationInput) (*entity.UserLocation, error) {
	location, err := buildLocation(userID, input)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	location.CreatedAt = now
	location.UpdatedAt = now

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles := repoFactory.NewProfileRepository()
		if _, err := profiles.FindProfileByUserID(ctx, userID); err != nil {
			if !errors.Is(err, repository.ErrProfileNotFound) {
				return err
			}
			if err := profiles.UpsertProfile(ctx, &entity.WingmanProfile{
				UserID:          userID,
				ExperienceLevel: entity.ExperienceBeginner,
				IsSeeking:       true,
				CreatedAt:       now,
				UpdatedAt:       now,
			}); err != nil {
				return err
			}
		}

		return repoFactory.NewLocationRepository().UpsertLocation(ctx, location)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Location updated",
		slog.String("user_id", userID.String()),
		slog.String("privacy_mode", string(location.PrivacyMode)),
	)

	return location, nil
}

// buildLocation validates the privacy rules: precise needs coordinates and hidden stores none.
func buildLocation(userID uuid.UUID, input *usecase.LocationInput) (*entity.UserLocation, error) {
	if !input.PrivacyMode.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown privacy_mode")
	}

	city := entity.CleanCity(input.City)
	if city == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("city is required")
	}

	location := &entity.UserLocation{
		UserID:            userID,
		City:              city,
		PrivacyMode:       input.PrivacyMode,
		MaxTravelDistance: entity.ClampTravelDistance(input.MaxTravelDistance),
	}

	switch input.PrivacyMode {
	case entity.PrivacyPrecise:
		if input.Latitude == nil || input.Longitude == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("precise privacy mode requires latitude and longitude")
		}
		location.Latitude, location.Longitude = input.Latitude, input.Longitude
	case entity.PrivacyCityOnly:
		// Coordinates are kept for the owner but never leave the pool query.
		location.Latitude, location.Longitude = input.Latitude, input.Longitude
	case entity.PrivacyHidden:
	}

	return location, nil
}

func (s *locationService) GetLocation(ctx context.Context, userID uuid.UUID) (*entity.UserLocation, error) {
	location, err := s.locations.FindLocationByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return location, nil
}

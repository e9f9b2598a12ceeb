package postgres

import (
	"context"

	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfileByUserID retrieves a single profile.
func (repo *profileRepository) FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.WingmanProfile, error) {
	var profileM model.WingmanProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfilesByUserIDs retrieves profiles in bulk; missing users are skipped.
func (repo *profileRepository) FindProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.WingmanProfile, error) {
	if len(userIDs) == 0 {
		return []*entity.WingmanProfile{}, nil
	}

	var profileModels []*model.WingmanProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by user IDs")
	}

	profiles := make([]*entity.WingmanProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// UpsertProfile creates or updates the editable part of a profile. The completed
// session counter is owned by IncrementCompletedSessions and never overwritten here.
func (repo *profileRepository) UpsertProfile(ctx context.Context, profile *entity.WingmanProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "email", "experience_level", "is_seeking", "updated_at"}),
		}).
		Create(profileM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// IncrementCompletedSessions adds one to each user's completed session counter.
func (repo *profileRepository) IncrementCompletedSessions(ctx context.Context, userIDs ...uuid.UUID) error {
	if len(userIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.WingmanProfileModel{}).
		Where("user_id IN ?", userIDs).
		UpdateColumn("completed_sessions", gorm.Expr("completed_sessions + 1")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment completed sessions")
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.WingmanProfileModel) *entity.WingmanProfile {
	if data == nil {
		return nil
	}

	return &entity.WingmanProfile{
		UserID:            data.UserID,
		DisplayName:       data.DisplayName,
		Email:             data.Email,
		ExperienceLevel:   entity.ExperienceLevel(data.ExperienceLevel),
		IsSeeking:         data.IsSeeking,
		CompletedSessions: data.CompletedSessions,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.WingmanProfile) *model.WingmanProfileModel {
	if data == nil {
		return nil
	}

	return &model.WingmanProfileModel{
		UserID:            data.UserID,
		DisplayName:       data.DisplayName,
		Email:             data.Email,
		ExperienceLevel:   string(data.ExperienceLevel),
		IsSeeking:         data.IsSeeking,
		CompletedSessions: data.CompletedSessions,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

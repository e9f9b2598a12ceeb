package postgres

import (
	"context"
	"time"

	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// idempotencyRepository implements the repository.IdempotencyRepository interface.
type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository is the constructor for idempotencyRepository.
func NewIdempotencyRepository(db *gorm.DB) repository.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (repo *idempotencyRepository) FindRecord(ctx context.Context, userID uuid.UUID, scope entity.IdempotencyScope, key string, now time.Time) (*entity.IdempotencyRecord, error) {
	var recordM model.IdempotencyKeyModel

	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ? AND scope = ? AND key = ? AND expires_at > ?", userID, string(scope), key, now).
		First(&recordM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrIdempotencyKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find idempotency key")
	}

	return &entity.IdempotencyRecord{
		UserID:     recordM.UserID,
		Scope:      entity.IdempotencyScope(recordM.Scope),
		Key:        recordM.Key,
		ResourceID: recordM.ResourceID,
		CreatedAt:  recordM.CreatedAt,
		ExpiresAt:  recordM.ExpiresAt,
	}, nil
}

// SaveRecord overwrites a stale record for the key; a live one yields ErrIdempotencyKeyExists.
func (repo *idempotencyRepository) SaveRecord(ctx context.Context, record *entity.IdempotencyRecord) error {
	recordM := &model.IdempotencyKeyModel{
		UserID:     record.UserID,
		Scope:      string(record.Scope),
		Key:        record.Key,
		ResourceID: record.ResourceID,
		CreatedAt:  record.CreatedAt,
		ExpiresAt:  record.ExpiresAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "scope"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"resource_id", "created_at", "expires_at"}),
			Where:     clause.Where{Exprs: []clause.Expression{
				clause.Lt{Column: clause.Column{Table: "idempotency_keys", Name: "expires_at"}, Value: record.CreatedAt},
			}},
		}).
		Create(recordM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrIdempotencyKeyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save idempotency key")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdempotencyKeyExists
	}

	return nil
}

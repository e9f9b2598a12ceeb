package postgres

import (
	"context"
	"fmt"
	"time"

	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// Conditional transitions. Each statement re-checks the expected pre-state in its WHERE
// clause, so concurrent writers on the same row serialize on the row lock and at most one
// of them observes the transition in RETURNING.
const (
	declineMatchSQL = `
		UPDATE wingman_matches
		SET %[1]s = 'declined', status = 'declined', updated_at = @now
		WHERE id = @id AND status = 'pending' AND %[1]s = 'pending' AND expires_at >= @now
		RETURNING *`

	acceptMatchSQL = `
		UPDATE wingman_matches
		SET %[1]s = 'accepted',
		    status = CASE WHEN %[2]s = 'accepted' THEN 'accepted' ELSE status END,
		    updated_at = @now
		WHERE id = @id AND status = 'pending' AND %[1]s = 'pending' AND expires_at >= @now
		RETURNING *`
)

// matchRepository implements the repository.MatchRepository interface.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// CreateMatch inserts a pending match.
func (repo *matchRepository) CreateMatch(ctx context.Context, match *entity.WingmanMatch) error {
	matchM := fromMatchDomain(match)

	if err := repo.db.WithContext(ctx).Create(matchM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMatch
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create match")
	}

	return nil
}

// FindMatchByID retrieves a match from the primary.
func (repo *matchRepository) FindMatchByID(ctx context.Context, id uuid.UUID) (*entity.WingmanMatch, error) {
	var matchM model.WingmanMatchModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&matchM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match by ID")
	}

	return toMatchDomain(&matchM), nil
}

// FindMatchesByUser lists the user's matches, newest first.
func (repo *matchRepository) FindMatchesByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WingmanMatch, error) {
	var matchModels []*model.WingmanMatchModel

	if err := repo.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by user")
	}

	return toMatchDomains(matchModels), nil
}

// RecordResponse writes one participant's response with a single conditional update.
func (repo *matchRepository) RecordResponse(ctx context.Context, update repository.ResponseUpdate) (*entity.WingmanMatch, bool, error) {
	self, other := "responder_a_status", "responder_b_status"
	if update.Side == entity.SideB {
		self, other = other, self
	}

	query := fmt.Sprintf(acceptMatchSQL, self, other)
	if update.Action == entity.MatchActionDecline {
		query = fmt.Sprintf(declineMatchSQL, self)
	}

	var rows []*model.WingmanMatchModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(query, map[string]any{"id": update.MatchID, "now": update.Now}).
		Scan(&rows).Error; err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to record match response")
	}

	if len(rows) == 1 {
		return toMatchDomain(rows[0]), true, nil
	}

	// The condition did not hold; report the row as it stands now.
	current, err := repo.FindMatchByID(ctx, update.MatchID)
	if err != nil {
		return nil, false, err
	}

	return current, false, nil
}

// ExpireMatch moves a pending match past its deadline to expired.
func (repo *matchRepository) ExpireMatch(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.WingmanMatchModel{}).
		Where("id = ? AND status = ? AND expires_at < ?", id, entity.MatchStatusPending, now).
		Updates(map[string]any{
			"status":     entity.MatchStatusExpired,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to expire match")
	}

	return result.RowsAffected == 1, nil
}

// FindExpiredPending lists pending matches whose deadline is before now, oldest first.
func (repo *matchRepository) FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]*entity.WingmanMatch, error) {
	var matchModels []*model.WingmanMatchModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status = ? AND expires_at < ?", entity.MatchStatusPending, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired pending matches")
	}

	return toMatchDomains(matchModels), nil
}

// MarkSideEffectsDispatched stamps an accepted match whose stamp is still empty.
func (repo *matchRepository) MarkSideEffectsDispatched(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.WingmanMatchModel{}).
		Where("id = ? AND status = ? AND side_effects_dispatched_at IS NULL", id, entity.MatchStatusAccepted).
		Update("side_effects_dispatched_at", at)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark side effects dispatched")
	}

	return result.RowsAffected == 1, nil
}

// FindUndispatchedAccepted lists accepted matches never stamped, last updated before cutoff.
func (repo *matchRepository) FindUndispatchedAccepted(ctx context.Context, cutoff time.Time, limit int) ([]*entity.WingmanMatch, error) {
	var matchModels []*model.WingmanMatchModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("status = ? AND side_effects_dispatched_at IS NULL AND updated_at < ?", entity.MatchStatusAccepted, cutoff).
		Order("updated_at ASC").
		Limit(limit).
		Find(&matchModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find undispatched accepted matches")
	}

	return toMatchDomains(matchModels), nil
}

// --- Mapper Functions ---

func toMatchDomain(data *model.WingmanMatchModel) *entity.WingmanMatch {
	if data == nil {
		return nil
	}

	return &entity.WingmanMatch{
		ID:                      data.ID,
		UserAID:                 data.UserAID,
		UserBID:                 data.UserBID,
		Status:                  entity.MatchStatus(data.Status),
		ResponderAStatus:        entity.ResponderStatus(data.ResponderAStatus),
		ResponderBStatus:        entity.ResponderStatus(data.ResponderBStatus),
		ReputationSnapshotA:     data.ReputationSnapshotA,
		ReputationSnapshotB:     data.ReputationSnapshotB,
		SideEffectsDispatchedAt: data.SideEffectsDispatchedAt,
		CreatedAt:               data.CreatedAt,
		ExpiresAt:               data.ExpiresAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

func toMatchDomains(models []*model.WingmanMatchModel) []*entity.WingmanMatch {
	matches := make([]*entity.WingmanMatch, 0, len(models))
	for _, matchM := range models {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches
}

func fromMatchDomain(data *entity.WingmanMatch) *model.WingmanMatchModel {
	if data == nil {
		return nil
	}

	return &model.WingmanMatchModel{
		ID:                      data.ID,
		UserAID:                 data.UserAID,
		UserBID:                 data.UserBID,
		Status:                  string(data.Status),
		ResponderAStatus:        string(data.ResponderAStatus),
		ResponderBStatus:        string(data.ResponderBStatus),
		ReputationSnapshotA:     data.ReputationSnapshotA,
		ReputationSnapshotB:     data.ReputationSnapshotB,
		SideEffectsDispatchedAt: data.SideEffectsDispatchedAt,
		CreatedAt:               data.CreatedAt,
		ExpiresAt:               data.ExpiresAt,
		UpdatedAt:               data.UpdatedAt,
	}
}

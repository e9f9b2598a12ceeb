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

// blockRepository implements the repository.BlockRepository interface.
type blockRepository struct {
	db *gorm.DB
}

// NewBlockRepository is the constructor for blockRepository.
func NewBlockRepository(db *gorm.DB) repository.BlockRepository {
	return &blockRepository{db: db}
}

// CreateBlock records a block; repeating an existing block is a no-op.
func (repo *blockRepository) CreateBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	blockM := &model.UserBlockModel{BlockerID: blockerID, BlockedID: blockedID, CreatedAt: time.Now()}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(blockM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create block")
	}

	return nil
}

// DeleteBlock removes a block. Deleting a missing block is a no-op.
func (repo *blockRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&model.UserBlockModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete block")
	}

	return nil
}

// ExistsEitherDirection reports whether either user blocked the other.
func (repo *blockRepository) ExistsEitherDirection(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserBlockModel{}).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)", a, b, b, a).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check block")
	}

	return count > 0, nil
}

// FindBlockedWith returns every user that blocked or was blocked by userID.
func (repo *blockRepository) FindBlockedWith(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Raw(`SELECT blocked_id FROM user_blocks WHERE blocker_id = ?
		     UNION
		     SELECT blocker_id FROM user_blocks WHERE blocked_id = ?`, userID, userID).
		Scan(&ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blocks")
	}

	return ids, nil
}

// chatChannelRepository implements the repository.ChatChannelRepository interface.
type chatChannelRepository struct {
	db *gorm.DB
}

// NewChatChannelRepository is the constructor for chatChannelRepository.
func NewChatChannelRepository(db *gorm.DB) repository.ChatChannelRepository {
	return &chatChannelRepository{db: db}
}

// CreateOrGetChannel inserts the channel unless one exists for the match.
func (repo *chatChannelRepository) CreateOrGetChannel(ctx context.Context, channel *entity.ChatChannel) (*entity.ChatChannel, error) {
	channelM := &model.ChatChannelModel{
		ID:        channel.ID,
		MatchID:   channel.MatchID,
		UserAID:   channel.UserAID,
		UserBID:   channel.UserBID,
		CreatedAt: channel.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "match_id"}}, DoNothing: true}).
		Create(channelM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create chat channel")
	}

	var stored model.ChatChannelModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("match_id = ?", channel.MatchID).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load chat channel")
	}

	return &entity.ChatChannel{
		ID:        stored.ID,
		MatchID:   stored.MatchID,
		UserAID:   stored.UserAID,
		UserBID:   stored.UserBID,
		CreatedAt: stored.CreatedAt,
	}, nil
}

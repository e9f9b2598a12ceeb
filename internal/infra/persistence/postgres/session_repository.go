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
	"gorm.io/plugin/dbresolver"
)

var activeSessionStatuses = []string{
	string(entity.SessionStatusScheduled),
	string(entity.SessionStatusInProgress),
}

const completeIfConfirmedSQL = `
	UPDATE wingman_sessions
	SET status = 'completed', completed_at = @now, updated_at = @now
	WHERE id = @id
	  AND status IN ('scheduled', 'in_progress')
	  AND confirmed_by_a = true
	  AND confirmed_by_b = true
	  AND scheduled_time <= @now
	RETURNING *`

const sessionOutcomesSQL = `
	SELECT
	  COUNT(*) FILTER (WHERE s.status = 'completed') AS completed,
	  COUNT(*) FILTER (WHERE s.status = 'no_show' AND s.no_show_user_id = @user) AS no_shows
	FROM wingman_sessions s
	JOIN wingman_matches m ON m.id = s.match_id
	WHERE m.user_a_id = @user OR m.user_b_id = @user`

// sessionOutcomesBatchSQL is sessionOutcomesSQL grouped per user. Users without a
// profile row produce no row and are filled with zeros by the caller.
const sessionOutcomesBatchSQL = `
	SELECT p.user_id,
	  COUNT(s.id) FILTER (WHERE s.status = 'completed') AS completed,
	  COUNT(s.id) FILTER (WHERE s.status = 'no_show' AND s.no_show_user_id = p.user_id) AS no_shows
	FROM wingman_profiles p
	LEFT JOIN wingman_matches m ON m.user_a_id = p.user_id OR m.user_b_id = p.user_id
	LEFT JOIN wingman_sessions s ON s.match_id = m.id
	WHERE p.user_id IN @users
	GROUP BY p.user_id`

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// CreateSession inserts a scheduled session.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.WingmanSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveSessionExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMatchNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// FindSessionByID retrieves a session from the primary.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.WingmanSession, error) {
	var sessionM model.WingmanSessionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	return toSessionDomain(&sessionM), nil
}

// FindActiveSessionByMatch returns the match's non-terminal session.
func (repo *sessionRepository) FindActiveSessionByMatch(ctx context.Context, matchID uuid.UUID) (*entity.WingmanSession, error) {
	var sessionM model.WingmanSessionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("match_id = ? AND status IN ?", matchID, activeSessionStatuses).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active session by match")
	}

	return toSessionDomain(&sessionM), nil
}

// SetConfirmation raises the side's confirmation flag on a non-terminal session.
func (repo *sessionRepository) SetConfirmation(ctx context.Context, sessionID uuid.UUID, side entity.MatchSide, now time.Time) (bool, error) {
	column := "confirmed_by_a"
	if side == entity.SideB {
		column = "confirmed_by_b"
	}

	result := repo.db.WithContext(ctx).
		Model(&model.WingmanSessionModel{}).
		Where("id = ? AND status IN ? AND "+column+" = ?", sessionID, activeSessionStatuses, false).
		Updates(map[string]any{
			column:       true,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to set session confirmation")
	}

	return result.RowsAffected == 1, nil
}

// CompleteIfConfirmed moves the session to completed when both flags are set and the
// scheduled time has passed.
func (repo *sessionRepository) CompleteIfConfirmed(ctx context.Context, sessionID uuid.UUID, now time.Time) (*entity.WingmanSession, bool, error) {
	var rows []*model.WingmanSessionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(completeIfConfirmedSQL, map[string]any{"id": sessionID, "now": now}).
		Scan(&rows).Error; err != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(err, "failed to complete session")
	}

	if len(rows) == 1 {
		return toSessionDomain(rows[0]), true, nil
	}

	current, err := repo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	return current, false, nil
}

// TransitionStatus moves a session whose status is in From to To.
func (repo *sessionRepository) TransitionStatus(ctx context.Context, transition repository.StatusTransition) (*entity.WingmanSession, bool, error) {
	from := make([]string, 0, len(transition.From))
	for _, status := range transition.From {
		from = append(from, string(status))
	}

	updates := map[string]any{
		"status":     string(transition.To),
		"updated_at": transition.Now,
	}
	if transition.NoShowUserID != nil {
		updates["no_show_user_id"] = *transition.NoShowUserID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.WingmanSessionModel{}).
		Where("id = ? AND status IN ?", transition.SessionID, from).
		Updates(updates)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to transition session")
	}

	current, err := repo.FindSessionByID(ctx, transition.SessionID)
	if err != nil {
		return nil, false, err
	}

	return current, result.RowsAffected == 1, nil
}

// CountSessionOutcomes counts the user's completed sessions and the no-shows attributed to them.
// Counts are read from the primary: the result is cached for a full TTL right after a
// completion invalidated the previous entry, so a lagging replica must not serve it.
func (repo *sessionRepository) CountSessionOutcomes(ctx context.Context, userID uuid.UUID) (int, int, error) {
	var counts struct {
		Completed int
		NoShows   int
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(sessionOutcomesSQL, map[string]any{"user": userID}).
		Scan(&counts).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to count session outcomes")
	}

	return counts.Completed, counts.NoShows, nil
}

// CountSessionOutcomesFor is CountSessionOutcomes for many users in one grouped query,
// also read from the primary.
func (repo *sessionRepository) CountSessionOutcomesFor(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]repository.SessionOutcomeCounts, error) {
	out := make(map[uuid.UUID]repository.SessionOutcomeCounts, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		UserID    uuid.UUID
		Completed int
		NoShows   int
	}

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Raw(sessionOutcomesBatchSQL, map[string]any{"users": userIDs}).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count session outcomes")
	}

	for _, row := range rows {
		out[row.UserID] = repository.SessionOutcomeCounts{Completed: row.Completed, NoShows: row.NoShows}
	}

	return out, nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.WingmanSessionModel) *entity.WingmanSession {
	if data == nil {
		return nil
	}

	return &entity.WingmanSession{
		ID:            data.ID,
		MatchID:       data.MatchID,
		CreatedBy:     data.CreatedBy,
		VenueName:     data.VenueName,
		ScheduledTime: data.ScheduledTime,
		Status:        entity.SessionStatus(data.Status),
		ConfirmedByA:  data.ConfirmedByA,
		ConfirmedByB:  data.ConfirmedByB,
		CompletedAt:   data.CompletedAt,
		NoShowUserID:  data.NoShowUserID,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSessionDomain(data *entity.WingmanSession) *model.WingmanSessionModel {
	if data == nil {
		return nil
	}

	return &model.WingmanSessionModel{
		ID:            data.ID,
		MatchID:       data.MatchID,
		CreatedBy:     data.CreatedBy,
		VenueName:     data.VenueName,
		ScheduledTime: data.ScheduledTime,
		Status:        string(data.Status),
		ConfirmedByA:  data.ConfirmedByA,
		ConfirmedByB:  data.ConfirmedByB,
		CompletedAt:   data.CompletedAt,
		NoShowUserID:  data.NoShowUserID,
		Notes:         data.Notes,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

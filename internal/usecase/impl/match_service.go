package impl

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"wingman/config"
	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/errors"
	"wingman/internal/infra/metrics"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	idempotencyKeyTTL = 24 * time.Hour

	defaultListLimit = 20
	maxListLimit     = 100
)

// MatchServiceParams holds dependencies for the match and sweeper services
type MatchServiceParams struct {
	fx.In

	Config      *config.Config
	TxManager   repository.TransactionManager
	Matches     repository.MatchRepository
	Profiles    repository.ProfileRepository
	Idempotency repository.IdempotencyRepository
	Discovery   usecase.DiscoveryUsecase
	Reputation  usecase.ReputationUsecase
	Dispatcher  *EventDispatcher
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
}

// matchService implements the MatchUsecase and SweeperUsecase interfaces.
type matchService struct {
	cfg         *config.MatchingConfig
	sweeperCfg  *config.SweeperConfig
	txManager   repository.TransactionManager
	matches     repository.MatchRepository
	profiles    repository.ProfileRepository
	idempotency repository.IdempotencyRepository
	discovery   usecase.DiscoveryUsecase
	reputation  usecase.ReputationUsecase
	dispatcher  *EventDispatcher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

func newMatchService(params MatchServiceParams) *matchService {
	return &matchService{
		cfg:         params.Config.Matching,
		sweeperCfg:  params.Config.Sweeper,
		txManager:   params.TxManager,
		matches:     params.Matches,
		profiles:    params.Profiles,
		idempotency: params.Idempotency,
		discovery:   params.Discovery,
		reputation:  params.Reputation,
		dispatcher:  params.Dispatcher,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// NewMatchService is the constructor for the match state machine.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return newMatchService(params)
}

func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RequestMatch creates a pending match with the requester's top candidate.
func (srv *matchService) RequestMatch(ctx context.Context, req usecase.MatchRequest) (*usecase.MatchOutcome, error) {
	if req.IdempotencyKey != "" {
		outcome, err := srv.replayRequest(ctx, req.UserID, req.IdempotencyKey)
		if err == nil {
			return outcome, nil
		}
		if !errors.Is(err, repository.ErrIdempotencyKeyNotFound) {
			return nil, err
		}
	}

	return srv.createMatch(ctx, req.UserID, nil, req.IdempotencyKey)
}

func (srv *matchService) replayRequest(ctx context.Context, userID uuid.UUID, key string) (*usecase.MatchOutcome, error) {
	record, err := srv.idempotency.FindRecord(ctx, userID, entity.IdempotencyScopeMatchRequest, key, srv.now())
	if err != nil {
		return nil, err
	}
	if record.ResourceID == nil {
		return &usecase.MatchOutcome{NoCandidates: true, Replayed: true}, nil
	}

	match, err := srv.matches.FindMatchByID(ctx, *record.ResourceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load replayed match")
	}

	return &usecase.MatchOutcome{Match: match, Replayed: true}, nil
}

// createMatch runs discovery and inserts a pending match with the top candidate.
// A unique-pair conflict means a concurrent request claimed the same pair, so
// that candidate is excluded and discovery runs again.
func (srv *matchService) createMatch(ctx context.Context, userID uuid.UUID, exclude map[uuid.UUID]struct{}, key string) (*usecase.MatchOutcome, error) {
	excluded := make(map[uuid.UUID]struct{}, len(exclude))
	maps.Copy(excluded, exclude)

	var requesterRep *entity.Reputation

	for range max(srv.cfg.CreateRetries, 1) {
		candidates, err := srv.discovery.FindCandidates(ctx, userID, excluded)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return &usecase.MatchOutcome{NoCandidates: true}, nil
		}
		top := candidates[0]

		if requesterRep == nil {
			if requesterRep, err = srv.reputation.GetReputation(ctx, userID); err != nil {
				return nil, err
			}
		}

		now := srv.now().UTC()
		match := entity.NewPendingMatch(userID, top.UserID, requesterRep.Score, top.Reputation, now, srv.cfg.MatchExpiry)

		err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			if err := repoFactory.NewMatchRepository().CreateMatch(ctx, match); err != nil {
				return err
			}
			if key == "" {
				return nil
			}

			return repoFactory.NewIdempotencyRepository().SaveRecord(ctx, &entity.IdempotencyRecord{
				UserID:     userID,
				Scope:      entity.IdempotencyScopeMatchRequest,
				Key:        key,
				ResourceID: &match.ID,
				CreatedAt:  now,
				ExpiresAt:  now.Add(idempotencyKeyTTL),
			})
		})

		switch {
		case err == nil:
			srv.metrics.MatchesCreated.Inc()
			srv.log(ctx).Info("Pending match created",
				slog.String("match_id", match.ID.String()),
				slog.String("requester_id", userID.String()),
				slog.String("candidate_id", top.UserID.String()),
			)

			return &usecase.MatchOutcome{Match: match, Candidate: top}, nil
		case errors.Is(err, repository.ErrDuplicateMatch):
			excluded[top.UserID] = struct{}{}
		case errors.Is(err, repository.ErrIdempotencyKeyExists):
			return srv.replayRequest(ctx, userID, key)
		default:
			return nil, errors.Wrap(err, "failed to create match")
		}
	}

	return &usecase.MatchOutcome{NoCandidates: true}, nil
}

// Respond applies a participant's accept or decline.
func (srv *matchService) Respond(ctx context.Context, input usecase.RespondInput) (*usecase.RespondResult, error) {
	if !input.Action.IsValid() {
		return nil, domainerrors.ErrInvalidAction
	}

	match, err := srv.loadMatch(ctx, input.MatchID)
	if err != nil {
		return nil, err
	}

	side := match.SideOf(input.UserID)
	if side == entity.SideNone {
		return nil, domainerrors.ErrNotParticipant
	}

	now := srv.now().UTC()
	replay, err := srv.checkRespond(ctx, match, side, input.Action, now)
	if err != nil || replay {
		return srv.responseOutcome(input.Action, match, replay, err)
	}

	updated, applied, err := srv.matches.RecordResponse(ctx, repository.ResponseUpdate{
		MatchID: match.ID,
		Side:    side,
		Action:  input.Action,
		Now:     now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record response")
	}

	if !applied {
		// A concurrent writer changed the row first. Judge the request against the fresh state.
		replay, err := srv.checkRespond(ctx, updated, side, input.Action, now)
		if err == nil && !replay {
			err = domainerrors.ErrConflict.WithDetails("match changed concurrently, retry the request")
		}

		return srv.responseOutcome(input.Action, updated, replay, err)
	}

	srv.metrics.MatchResponses.WithLabelValues(string(input.Action), metrics.OutcomeApplied).Inc()
	result := &usecase.RespondResult{Match: updated}

	switch {
	case input.Action == entity.MatchActionDecline:
		srv.afterDecline(ctx, updated, input.UserID, result)
	case updated.Status == entity.MatchStatusAccepted:
		result.MutualAccept = true
		srv.afterMutualAccept(ctx, updated, input.UserID)
	}

	return result, nil
}

// checkRespond decides whether a response may be applied to the match as it is now.
// It reports replay for a repeated identical response, and a Conflict for anything
// the state no longer permits. Stale pending matches are expired on the way.
func (srv *matchService) checkRespond(ctx context.Context, match *entity.WingmanMatch, side entity.MatchSide, action entity.MatchAction, now time.Time) (replay bool, err error) {
	current := match.ResponderStatusOf(side)
	if current == action.ResponderStatus() {
		return true, nil
	}
	if current != entity.ResponderPending {
		return false, domainerrors.ErrAlreadyResponded.WithDetails("you already answered " + string(current))
	}

	switch match.Status {
	case entity.MatchStatusExpired:
		return false, domainerrors.ErrMatchExpired
	case entity.MatchStatusPending:
	default:
		return false, domainerrors.ErrMatchNotPending.WithDetails("match is " + string(match.Status))
	}

	if match.IsExpiredAt(now) {
		if _, err := srv.expire(ctx, match, now); err != nil {
			srv.log(ctx).Warn("Lazy expiry failed", slog.String("match_id", match.ID.String()), slog.Any("error", err))
		}

		return false, domainerrors.ErrMatchExpired
	}

	return false, nil
}

func (srv *matchService) responseOutcome(action entity.MatchAction, match *entity.WingmanMatch, replay bool, err error) (*usecase.RespondResult, error) {
	if err != nil {
		outcome := metrics.OutcomeConflict
		if errors.Is(err, domainerrors.ErrMatchExpired) {
			outcome = metrics.OutcomeExpired
		}
		srv.metrics.MatchResponses.WithLabelValues(string(action), outcome).Inc()

		return nil, err
	}

	srv.metrics.MatchResponses.WithLabelValues(string(action), metrics.OutcomeReplayed).Inc()

	return &usecase.RespondResult{Match: match, AlreadyHandled: replay}, nil
}

// afterDecline notifies the partner and offers the decliner a replacement match.
func (srv *matchService) afterDecline(ctx context.Context, match *entity.WingmanMatch, decliner uuid.UUID, result *usecase.RespondResult) {
	srv.dispatcher.Dispatch(ctx, srv.matchEvent(constants.EventMatchDeclined, match, decliner), nil)

	replacement, err := srv.createMatch(ctx, decliner, nil, "")
	if err != nil {
		srv.log(ctx).Warn("Re-match after decline failed",
			slog.String("match_id", match.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	result.Replacement = replacement
}

// afterMutualAccept publishes the side effects and records the dispatch once the publish succeeded.
func (srv *matchService) afterMutualAccept(ctx context.Context, match *entity.WingmanMatch, actor uuid.UUID) {
	srv.metrics.MutualAccepts.Inc()
	srv.log(ctx).Info("Mutual acceptance", slog.String("match_id", match.ID.String()))

	srv.dispatcher.Dispatch(ctx, srv.matchEvent(constants.EventMatchAccepted, match, actor), func(pubCtx context.Context) {
		srv.markDispatched(pubCtx, match.ID)
	})
}

func (srv *matchService) markDispatched(ctx context.Context, matchID uuid.UUID) {
	if _, err := srv.matches.MarkSideEffectsDispatched(ctx, matchID, srv.now().UTC()); err != nil {
		srv.log(ctx).Warn("Failed to mark side effects dispatched",
			slog.String("match_id", matchID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *matchService) matchEvent(eventType string, match *entity.WingmanMatch, actor uuid.UUID) *entity.EngagementEvent {
	return &entity.EngagementEvent{
		Type:       eventType,
		MatchID:    match.ID,
		UserAID:    match.UserAID,
		UserBID:    match.UserBID,
		ActorID:    actor,
		OccurredAt: srv.now().UTC(),
	}
}

// expire runs the conditional pending -> expired transition.
func (srv *matchService) expire(ctx context.Context, match *entity.WingmanMatch, now time.Time) (bool, error) {
	applied, err := srv.matches.ExpireMatch(ctx, match.ID, now)
	if err != nil {
		return false, errors.Wrap(err, "failed to expire match")
	}
	if applied {
		srv.metrics.MatchesExpired.Inc()
		match.Status = entity.MatchStatusExpired
	}

	return applied, nil
}

func (srv *matchService) loadMatch(ctx context.Context, matchID uuid.UUID) (*entity.WingmanMatch, error) {
	match, err := srv.matches.FindMatchByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, domainerrors.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match")
	}

	return match, nil
}

// GetMatch returns a match visible to its participants only.
func (srv *matchService) GetMatch(ctx context.Context, userID, matchID uuid.UUID) (*entity.WingmanMatch, error) {
	match, err := srv.loadMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.IsParticipant(userID) {
		return nil, domainerrors.ErrNotParticipant
	}

	return match, nil
}

// ListMatches returns the caller's matches, newest first.
func (srv *matchService) ListMatches(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WingmanMatch, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	matches, err := srv.matches.FindMatchesByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list matches")
	}

	return matches, nil
}

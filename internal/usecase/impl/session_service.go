package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	domainerrors "wingman/internal/domain/errors"
	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/errors"
	"wingman/internal/infra/metrics"
	"wingman/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var activeSessionStates = []entity.SessionStatus{
	entity.SessionStatusScheduled,
	entity.SessionStatusInProgress,
}

// SessionServiceParams holds dependencies for the session service
type SessionServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Matches    repository.MatchRepository
	Sessions   repository.SessionRepository
	Reputation usecase.ReputationUsecase
	QRCode     service.QRCodeService
	Dispatcher *EventDispatcher
	Metrics    *metrics.Metrics
	Logger     *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager  repository.TransactionManager
	matches    repository.MatchRepository
	sessions   repository.SessionRepository
	reputation usecase.ReputationUsecase
	qrcode     service.QRCodeService
	dispatcher *EventDispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:  params.TxManager,
		matches:    params.Matches,
		sessions:   params.Sessions,
		reputation: params.Reputation,
		qrcode:     params.QRCode,
		dispatcher: params.Dispatcher,
		metrics:    params.Metrics,
		logger:     params.Logger,
		now:        time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession schedules a session under an accepted match. Repeating the same
// request returns the session it created.
func (srv *sessionService) CreateSession(ctx context.Context, input usecase.CreateSessionInput) (*entity.WingmanSession, error) {
	venue := strings.TrimSpace(input.VenueName)
	if venue == "" || input.ScheduledTime.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("venue_name and scheduled_time are required")
	}

	match, err := srv.matches.FindMatchByID(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return nil, domainerrors.ErrMatchNotFound
		}

		return nil, errors.Wrap(err, "failed to find match")
	}
	if !match.IsParticipant(input.UserID) {
		return nil, domainerrors.ErrNotParticipant
	}
	if match.Status != entity.MatchStatusAccepted {
		return nil, domainerrors.ErrMatchNotAccepted
	}

	now := srv.now().UTC()
	session := &entity.WingmanSession{
		ID:            uuid.New(),
		MatchID:       match.ID,
		CreatedBy:     input.UserID,
		VenueName:     venue,
		ScheduledTime: input.ScheduledTime.UTC(),
		Status:        entity.SessionStatusScheduled,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if existing, err := srv.existingActiveSession(ctx, session); existing != nil || err != nil {
		return existing, err
	}

	if err := srv.sessions.CreateSession(ctx, session); err != nil {
		if errors.Is(err, repository.ErrActiveSessionExists) {
			// Lost a race with a concurrent create for the same match.
			if existing, findErr := srv.existingActiveSession(ctx, session); existing != nil || findErr != nil {
				return existing, findErr
			}

			return nil, domainerrors.ErrActiveSessionExists
		}

		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Session scheduled",
		slog.String("session_id", session.ID.String()),
		slog.String("match_id", match.ID.String()),
	)

	sessionID := session.ID
	srv.dispatcher.Dispatch(ctx, &entity.EngagementEvent{
		Type:       constants.EventSessionScheduled,
		MatchID:    match.ID,
		SessionID:  &sessionID,
		UserAID:    match.UserAID,
		UserBID:    match.UserBID,
		ActorID:    input.UserID,
		VenueName:  session.VenueName,
		OccurredAt: now,
	}, nil)

	return session, nil
}

// existingActiveSession returns the match's active session when it equals the
// requested one, ErrActiveSessionExists when it differs, and nil when there is none.
func (srv *sessionService) existingActiveSession(ctx context.Context, requested *entity.WingmanSession) (*entity.WingmanSession, error) {
	existing, err := srv.sessions.FindActiveSessionByMatch(ctx, requested.MatchID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active session")
	}

	if existing.CreatedBy == requested.CreatedBy &&
		existing.VenueName == requested.VenueName &&
		existing.ScheduledTime.Equal(requested.ScheduledTime) {
		return existing, nil
	}

	return nil, domainerrors.ErrActiveSessionExists
}

// loadParticipantSession loads a session and its match and resolves the caller's side.
func (srv *sessionService) loadParticipantSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.ParticipantSession, entity.MatchSide, error) {
	session, err := srv.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, entity.SideNone, domainerrors.ErrSessionNotFound
		}

		return nil, entity.SideNone, errors.Wrap(err, "failed to find session")
	}

	match, err := srv.matches.FindMatchByID(ctx, session.MatchID)
	if err != nil {
		return nil, entity.SideNone, errors.Wrap(err, "failed to find session match")
	}

	side := match.SideOf(userID)
	if side == entity.SideNone {
		return nil, entity.SideNone, domainerrors.ErrNotParticipant
	}

	return &entity.ParticipantSession{Session: session, Match: match}, side, nil
}

func (srv *sessionService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error) {
	ps, _, err := srv.loadParticipantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	return ps.Session, nil
}

// ConfirmCompletion sets the caller's flag and completes the session when both are set.
func (srv *sessionService) ConfirmCompletion(ctx context.Context, userID, sessionID uuid.UUID) (*usecase.ConfirmResult, error) {
	ps, side, err := srv.loadParticipantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	session := ps.Session
	alreadyConfirmed := session.IsConfirmedBy(side)

	if err := checkConfirmable(session, now); err != nil {
		return nil, err
	}
	if session.Status == entity.SessionStatusCompleted {
		return &usecase.ConfirmResult{Session: session, AlreadyConfirmed: alreadyConfirmed, Completed: true}, nil
	}

	if !alreadyConfirmed {
		applied, err := srv.sessions.SetConfirmation(ctx, session.ID, side, now)
		if err != nil {
			return nil, errors.Wrap(err, "failed to set confirmation")
		}
		if !applied {
			// Either a concurrent retry set the flag or the session left the active states.
			if session, err = srv.reload(ctx, session.ID); err != nil {
				return nil, err
			}
			if err := checkConfirmable(session, now); err != nil {
				return nil, err
			}
			alreadyConfirmed = true
		}
		srv.log(ctx).Info("Session completion confirmed",
			slog.String("session_id", session.ID.String()),
			slog.String("user_id", userID.String()),
		)
	}

	completed, err := srv.completeIfConfirmed(ctx, ps.Match, session.ID, now)
	if err != nil {
		return nil, err
	}
	if completed == nil {
		if completed, err = srv.reload(ctx, session.ID); err != nil {
			return nil, err
		}
	}

	return &usecase.ConfirmResult{
		Session:          completed,
		AlreadyConfirmed: alreadyConfirmed,
		Completed:        completed.Status == entity.SessionStatusCompleted,
	}, nil
}

// checkConfirmable rejects confirmations on sessions that ended without completing
// or whose scheduled time has not passed yet.
func checkConfirmable(session *entity.WingmanSession, now time.Time) error {
	if session.Status == entity.SessionStatusCompleted {
		return nil
	}
	if session.Status.IsTerminal() {
		return domainerrors.ErrSessionTerminal.WithDetails("session is " + string(session.Status))
	}
	if !session.HasStarted(now) {
		return domainerrors.ErrSessionNotStarted
	}

	return nil
}

// completeIfConfirmed performs the guarded completion. The counters of both
// participants move in the same transaction as the status, so a session is
// counted once no matter how many callers race here. It returns nil when this
// call did not perform the transition.
func (srv *sessionService) completeIfConfirmed(ctx context.Context, match *entity.WingmanMatch, sessionID uuid.UUID, now time.Time) (*entity.WingmanSession, error) {
	var completed *entity.WingmanSession

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, applied, err := repoFactory.NewSessionRepository().CompleteIfConfirmed(ctx, sessionID, now)
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
		if err := repoFactory.NewProfileRepository().IncrementCompletedSessions(ctx, match.UserAID, match.UserBID); err != nil {
			return err
		}
		completed = session

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete session")
	}
	if completed == nil {
		return nil, nil
	}

	srv.metrics.SessionsCompleted.Inc()
	srv.reputation.Invalidate(ctx, match.UserAID, match.UserBID)
	srv.log(ctx).Info("Session completed", slog.String("session_id", sessionID.String()))

	sid := completed.ID
	srv.dispatcher.Dispatch(ctx, &entity.EngagementEvent{
		Type:       constants.EventSessionCompleted,
		MatchID:    match.ID,
		SessionID:  &sid,
		UserAID:    match.UserAID,
		UserBID:    match.UserBID,
		OccurredAt: now,
	}, nil)

	return completed, nil
}

func (srv *sessionService) reload(ctx context.Context, sessionID uuid.UUID) (*entity.WingmanSession, error) {
	session, err := srv.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload session")
	}

	return session, nil
}

// CompleteSession completes a session only when both confirmations are present.
func (srv *sessionService) CompleteSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error) {
	ps, _, err := srv.loadParticipantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	session := ps.Session
	if err := checkConfirmable(session, now); err != nil {
		return nil, err
	}
	if session.Status == entity.SessionStatusCompleted {
		return session, nil
	}
	if !session.BothConfirmed() {
		return nil, domainerrors.ErrConfirmationIncomplete
	}

	completed, err := srv.completeIfConfirmed(ctx, ps.Match, session.ID, now)
	if err != nil {
		return nil, err
	}
	if completed != nil {
		return completed, nil
	}

	if session, err = srv.reload(ctx, session.ID); err != nil {
		return nil, err
	}
	if session.Status == entity.SessionStatusCompleted {
		return session, nil
	}
	if err := checkConfirmable(session, now); err != nil {
		return nil, err
	}

	return nil, domainerrors.ErrConfirmationIncomplete
}

// StartSession moves a scheduled session to in_progress once its time has come.
func (srv *sessionService) StartSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error) {
	ps, _, err := srv.loadParticipantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	started := func(s *entity.WingmanSession) bool { return s.Status == entity.SessionStatusInProgress }
	if started(ps.Session) {
		return ps.Session, nil
	}
	if ps.Session.Status.IsTerminal() {
		return nil, domainerrors.ErrSessionTerminal.WithDetails("session is " + string(ps.Session.Status))
	}
	if !ps.Session.HasStarted(now) {
		return nil, domainerrors.ErrSessionNotStarted
	}

	return srv.transition(ctx, repository.StatusTransition{
		SessionID: ps.Session.ID,
		From:      []entity.SessionStatus{entity.SessionStatusScheduled},
		To:        entity.SessionStatusInProgress,
		Now:       now,
	}, started)
}

// CancelSession cancels an active session.
func (srv *sessionService) CancelSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error) {
	ps, _, err := srv.loadParticipantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	cancelled := func(s *entity.WingmanSession) bool { return s.Status == entity.SessionStatusCancelled }
	if cancelled(ps.Session) {
		return ps.Session, nil
	}
	if ps.Session.Status.IsTerminal() {
		return nil, domainerrors.ErrSessionTerminal.WithDetails("session is " + string(ps.Session.Status))
	}

	return srv.transition(ctx, repository.StatusTransition{
		SessionID: ps.Session.ID,
		From:      activeSessionStates,
		To:        entity.SessionStatusCancelled,
		Now:       srv.now().UTC(),
	}, cancelled)
}

// ReportNoShow records that the caller's partner did not turn up.
func (srv *sessionService) ReportNoShow(ctx context.Context, userID, sessionID uuid.UUID) (*entity.WingmanSession, error) {
	ps, side, err := srv.loadParticipantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	partner := ps.Match.PartnerOf(userID)
	reported := func(s *entity.WingmanSession) bool {
		return s.Status == entity.SessionStatusNoShow && s.NoShowUserID != nil && *s.NoShowUserID == partner
	}

	session := ps.Session
	if reported(session) {
		return session, nil
	}
	if session.Status.IsTerminal() {
		return nil, domainerrors.ErrSessionTerminal.WithDetails("session is " + string(session.Status))
	}
	if !session.HasStarted(now) {
		return nil, domainerrors.ErrSessionNotStarted
	}
	if session.IsConfirmedBy(side) {
		return nil, domainerrors.ErrConflict.WithDetails("you already confirmed this session took place")
	}

	updated, err := srv.transition(ctx, repository.StatusTransition{
		SessionID:    session.ID,
		From:         activeSessionStates,
		To:           entity.SessionStatusNoShow,
		NoShowUserID: &partner,
		Now:          now,
	}, reported)
	if err != nil {
		return nil, err
	}

	srv.reputation.Invalidate(ctx, partner)
	srv.log(ctx).Info("No-show reported",
		slog.String("session_id", session.ID.String()),
		slog.String("absent_user_id", partner.String()),
	)

	return updated, nil
}

// transition applies a conditional status change. When the row moved first, a
// fresh state satisfying done is treated as an idempotent success.
func (srv *sessionService) transition(ctx context.Context, t repository.StatusTransition, done func(*entity.WingmanSession) bool) (*entity.WingmanSession, error) {
	session, applied, err := srv.sessions.TransitionStatus(ctx, t)
	if err != nil {
		return nil, errors.Wrap(err, "failed to transition session")
	}
	if applied || done(session) {
		return session, nil
	}

	return nil, domainerrors.ErrSessionTerminal.WithDetails("session is " + string(session.Status))
}

// GenerateCheckInQR renders the caller's check-in code for an active session.
func (srv *sessionService) GenerateCheckInQR(ctx context.Context, userID, sessionID uuid.UUID) ([]byte, error) {
	ps, _, err := srv.loadParticipantSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if ps.Session.Status.IsTerminal() {
		return nil, domainerrors.ErrSessionTerminal.WithDetails("session is " + string(ps.Session.Status))
	}

	png, err := srv.qrcode.GenerateSessionQR(ps.Session.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in code")
	}

	return png, nil
}

// ConfirmByQR confirms completion for the user who scanned the partner's code.
func (srv *sessionService) ConfirmByQR(ctx context.Context, userID uuid.UUID, qrData string) (*usecase.ConfirmResult, error) {
	sessionID, err := srv.qrcode.ParseSessionQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WithDetails(err.Error())
	}

	return srv.ConfirmCompletion(ctx, userID, sessionID)
}

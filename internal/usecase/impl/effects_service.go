package impl

import (
	"context"
	"log/slog"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/constants"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/repository"
	"wingman/internal/domain/service"
	"wingman/internal/errors"
	"wingman/internal/usecase"

	"go.uber.org/fx"
)

// EffectsServiceParams holds dependencies for the side-effect handler
type EffectsServiceParams struct {
	fx.In

	Matches  repository.MatchRepository
	Sessions repository.SessionRepository
	Chat     service.ChatProvisioner
	Notifier service.Notifier
	Logger   *slog.Logger
}

// effectsService runs the side effects of committed transitions. Every branch is
// safe to replay: chat provisioning is keyed by match and notifications are fire-and-forget.
type effectsService struct {
	matches  repository.MatchRepository
	sessions repository.SessionRepository
	chat     service.ChatProvisioner
	notifier service.Notifier
	logger   *slog.Logger
}

// NewEffectsService is the constructor for the engagement event handler.
func NewEffectsService(params EffectsServiceParams) service.EventHandler {
	return &effectsService{
		matches:  params.Matches,
		sessions: params.Sessions,
		chat:     params.Chat,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

func (srv *effectsService) HandleEvent(ctx context.Context, event *entity.EngagementEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(
		slog.String("event_type", event.Type),
		slog.String("match_id", event.MatchID.String()),
	)

	switch event.Type {
	case constants.EventMatchAccepted, constants.EventMatchDeclined, constants.EventSessionScheduled:
	case constants.EventSessionCompleted:
		log.Debug("Session completion recorded")

		return nil
	default:
		return errors.Wrap(usecase.ErrUnknownEventType, event.Type)
	}

	match, err := srv.matches.FindMatchByID(ctx, event.MatchID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return errors.Wrap(err, "event references unknown match")
		}

		return usecase.NewRetryableError(errors.Wrap(err, "failed to load match"))
	}

	switch event.Type {
	case constants.EventMatchAccepted:
		return srv.onMatchAccepted(ctx, log, match)
	case constants.EventMatchDeclined:
		if err := srv.notifier.NotifyMatchDeclined(ctx, match, event.ActorID); err != nil {
			log.Warn("Decline notification failed", slog.Any("error", err))
		}
	case constants.EventSessionScheduled:
		return srv.onSessionScheduled(ctx, log, match, event)
	}

	return nil
}

// onMatchAccepted provisions the chat channel and notifies both users. Only a
// provisioning failure is retried; notification failures are logged.
func (srv *effectsService) onMatchAccepted(ctx context.Context, log *slog.Logger, match *entity.WingmanMatch) error {
	if match.Status != entity.MatchStatusAccepted {
		log.Warn("Ignoring accept event for match that is not accepted", slog.String("status", string(match.Status)))

		return nil
	}

	channel, err := srv.chat.ProvisionChannel(ctx, match.ID, match.UserAID, match.UserBID)
	if err != nil {
		return usecase.NewRetryableError(err)
	}

	if err := srv.notifier.NotifyMatchAccepted(ctx, match); err != nil {
		log.Warn("Accept notification failed", slog.Any("error", err))
	}

	log.Info("Mutual accept side effects done", slog.String("channel_id", channel.ID.String()))

	return nil
}

func (srv *effectsService) onSessionScheduled(ctx context.Context, log *slog.Logger, match *entity.WingmanMatch, event *entity.EngagementEvent) error {
	if event.SessionID == nil {
		return errors.New("session event without session id")
	}

	session, err := srv.sessions.FindSessionByID(ctx, *event.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(err, "event references unknown session")
		}

		return usecase.NewRetryableError(errors.Wrap(err, "failed to load session"))
	}

	if err := srv.notifier.NotifySessionScheduled(ctx, match, session); err != nil {
		log.Warn("Session notification failed", slog.Any("error", err))
	}

	return nil
}

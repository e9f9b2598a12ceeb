package pubsub

import (
	"context"
	"log/slog"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/service"
)

// inlinePublisher applies events in-process when no broker is configured.
type inlinePublisher struct {
	handler service.EventHandler
	logger  *slog.Logger
}

// NewInlinePublisher returns a publisher that hands events straight to handler.
func NewInlinePublisher(handler service.EventHandler, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{handler: handler, logger: logger}
}

func (p *inlinePublisher) Publish(ctx context.Context, event *entity.EngagementEvent) error {
	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("[InlinePubSub] Dispatching event in-process",
		slog.String("type", event.Type),
		slog.String("match_id", event.MatchID.String()),
	)

	return p.handler.HandleEvent(ctx, event)
}

func (p *inlinePublisher) Close() error {
	return nil
}

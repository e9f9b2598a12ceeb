package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "wingman/internal/delivery/context"
	"wingman/internal/domain/entity"
	"wingman/internal/domain/lifecycle"
	"wingman/internal/domain/service"

	"go.uber.org/fx"
)

const defaultPublishTimeout = 10 * time.Second

// EventDispatcher publishes committed transitions off the request path.
type EventDispatcher struct {
	publisher service.EventPublisher
	timeout   time.Duration
	logger    *slog.Logger
	inflight  sync.WaitGroup
}

// EventDispatcherParams holds dependencies for the EventDispatcher
type EventDispatcherParams struct {
	fx.In

	Lifecycle fx.Lifecycle `optional:"true"`
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewEventDispatcher creates the dispatcher and drains in-flight publishes on shutdown.
func NewEventDispatcher(params EventDispatcherParams) *EventDispatcher {
	d := &EventDispatcher{
		publisher: params.Publisher,
		timeout:   defaultPublishTimeout,
		logger:    params.Logger,
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return d.Wait(ctx)
			},
		})
	}

	return d
}

// Dispatch publishes in the background with a context detached from the caller's
// cancellation. onPublished runs only after a successful publish.
func (d *EventDispatcher) Dispatch(ctx context.Context, event *entity.EngagementEvent, onPublished func(context.Context)) {
	detached := context.WithoutCancel(ctx)

	d.inflight.Go(func() {
		pubCtx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()

		if err := d.Publish(pubCtx, event); err != nil {
			return
		}
		if onPublished != nil {
			onPublished(pubCtx)
		}
	})
}

// Publish sends the event synchronously. Failures are logged and returned.
func (d *EventDispatcher) Publish(ctx context.Context, event *entity.EngagementEvent) error {
	log := deliverycontext.GetLoggerOrDefault(ctx, d.logger)

	if err := d.publisher.Publish(ctx, event); err != nil {
		log.Error("Failed to publish engagement event",
			slog.String("type", event.Type),
			slog.String("match_id", event.MatchID.String()),
			slog.Any("error", err),
		)

		return err
	}

	log.Debug("Engagement event published",
		slog.String("type", event.Type),
		slog.String("match_id", event.MatchID.String()),
	)

	return nil
}

// Wait blocks until every background publish finished or ctx is done.
func (d *EventDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

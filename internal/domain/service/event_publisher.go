package service

import (
	"context"

	"wingman/internal/domain/entity"
)

// EventPublisher defines the interface for publishing engagement events to a message queue
type EventPublisher interface {
	// Publish hands an event off for asynchronous side-effect processing
	Publish(ctx context.Context, event *entity.EngagementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// EventHandler applies the side effects of one engagement event. Handlers must be
// idempotent because delivery is at-least-once.
type EventHandler interface {
	HandleEvent(ctx context.Context, event *entity.EngagementEvent) error
}

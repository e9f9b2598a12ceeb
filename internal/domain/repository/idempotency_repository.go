package repository

import (
	"context"
	"time"

	"wingman/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrIdempotencyKeyNotFound is returned when no live record exists for a key
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
	// ErrIdempotencyKeyExists is returned when a concurrent request already saved the key
	ErrIdempotencyKeyExists = errors.New("idempotency key already recorded")
)

// IdempotencyRepository stores client retry keys for mutating requests.
type IdempotencyRepository interface {
	// FindRecord returns the unexpired record for (user, scope, key).
	FindRecord(ctx context.Context, userID uuid.UUID, scope entity.IdempotencyScope, key string, now time.Time) (*entity.IdempotencyRecord, error)

	// SaveRecord inserts a record, replacing an expired one for the same key.
	SaveRecord(ctx context.Context, record *entity.IdempotencyRecord) error
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyScope names the operation an idempotency key belongs to.
type IdempotencyScope string

const IdempotencyScopeMatchRequest IdempotencyScope = "match_request"

// IdempotencyRecord binds a client-supplied key to the resource its first request produced.
type IdempotencyRecord struct {
	UserID     uuid.UUID
	Scope      IdempotencyScope
	Key        string
	ResourceID *uuid.UUID // nil when the first request produced nothing
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

package interfaces

import (
	"context"
	"time"
)

// IdempotencyRecord is the stored state of an Idempotency-Key.
// An empty BudgetID means the first request is still running.
type IdempotencyRecord struct {
	BudgetID string
	Reserved bool
}

// IIdempotencyRepository stores Idempotency-Key reservations for budget
// creation.
type IIdempotencyRepository interface {
	// Reserve claims the key. When the key already exists the stored record
	// is returned with Reserved=false.
	Reserve(ctx context.Context, userID, key string, ttl time.Duration) (IdempotencyRecord, error)
	Complete(ctx context.Context, userID, key, budgetID string) error
	Release(ctx context.Context, userID, key string) error
}

package persistence

import (
	"context"
)

// UnitOfWork coordinates the lock transition as one committed unit. The
// re-check-eligibility-then-write sequence for a batch must happen inside a
// single transaction; per-row atomicity alone is not enough when two admin
// lock requests overlap.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetTimeLogRepository returns a time-log repository bound to the
	// current transaction
	GetTimeLogRepository(ctx context.Context) TimeLogRepository
}

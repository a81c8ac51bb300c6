package usecase

import (
	"context"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
)

// LockRequest represents an incoming request to lock a batch of time logs.
// CandidateIDs carries the explicit ids the caller intends to lock; the
// filter is re-evaluated at commit time so a stale client snapshot cannot
// widen the batch.
type LockRequest struct {
	Filter       entity.TimeLogFilter
	CandidateIDs []uint64
}

// LockResult contains the outcome of a lock operation
type LockResult struct {
	Count       int64            // Number of logs actually transitioned
	UpdatedLogs []entity.TimeLog // Re-fetched logs, joined with display names
}

// TimeLockUseCase defines the lock-workflow business operations
type TimeLockUseCase interface {
	// LockTimeLogs atomically transitions the eligible subset of the
	// candidate set from unlocked to locked, recording provenance.
	// Admin-only; fails rather than silently succeeding when nothing
	// transitions.
	LockTimeLogs(ctx context.Context, req LockRequest, actor entity.Actor) (*LockResult, error)

	// PreviewLock returns the logs the filter currently matches, so the
	// caller can show what would be locked before committing
	PreviewLock(ctx context.Context, filter entity.TimeLogFilter, actor entity.Actor) ([]entity.TimeLog, error)
}

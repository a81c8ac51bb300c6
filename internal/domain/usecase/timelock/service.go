package timelock

import (
	"context"
	"fmt"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/domain/port/persistence"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
)

// Service implements the time-log lock workflow. The filter used to build
// the candidate set is re-applied at commit time inside one store
// transaction, so a stale client snapshot can narrow the committed batch
// but never widen it.
type Service struct {
	uow          persistence.UnitOfWork
	timeLogRepo  persistence.TimeLogRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *LockValidator
}

// NewService creates a new lock service
func NewService(
	uow persistence.UnitOfWork,
	timeLogRepo persistence.TimeLogRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeLogRepo:  timeLogRepo,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewLockValidator(),
	}
}

// Ensure Service satisfies the usecase port
var _ usecase.TimeLockUseCase = (*Service)(nil)

// LockTimeLogs transitions the eligible subset of the candidate ids from
// unlocked to locked as a single committed unit.
//
// The sequence is:
//  1. Validate request shape and actor capability.
//  2. Verify every candidate exists and none is already locked, so the
//     caller gets the offending ids instead of a silent partial result.
//  3. Inside one transaction, apply the conditional bulk lock guarded by
//     locked = false and the re-applied filter constraints.
//  4. Reject with a no-op error when zero rows transitioned.
func (s *Service) LockTimeLogs(ctx context.Context, req usecase.LockRequest, actor entity.Actor) (*usecase.LockResult, error) {
	if err := s.validator.ValidateLockRequest(req, actor); err != nil {
		return nil, err
	}

	ids := dedupeIDs(req.CandidateIDs)

	s.logger.Info("Lock request received", map[string]any{
		"candidate_count": len(ids),
		"actor_id":        actor.ID,
		"project_id":      req.Filter.ProjectID,
		"user_id":         req.Filter.UserID,
	})

	existing, err := s.timeLogRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidate logs: %w", err)
	}

	if missing := missingIDs(ids, existing); len(missing) > 0 {
		s.logger.Warn("Lock request references unknown time logs", map[string]any{
			"missing_ids": missing,
			"actor_id":    actor.ID,
		})
		return nil, errs.NewNotFoundError(missing)
	}

	if locked := lockedIDs(existing); len(locked) > 0 {
		s.logger.Warn("Lock request references already-locked time logs", map[string]any{
			"locked_ids": locked,
			"actor_id":   actor.ID,
		})
		return nil, errs.NewLockConflictError(locked)
	}

	count, err := s.lockInTransaction(ctx, ids, req.Filter, actor.ID)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		// The candidates drifted out of eligibility between fetch and
		// commit; the caller must re-derive the set and retry.
		return nil, errs.ErrNothingLocked
	}

	updated, err := s.timeLogRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to re-fetch locked logs: %w", err)
	}

	s.logger.Info("Time logs locked", map[string]any{
		"attempted": len(ids),
		"locked":    count,
		"actor_id":  actor.ID,
	})

	return &usecase.LockResult{Count: count, UpdatedLogs: updated}, nil
}

// lockInTransaction runs the conditional bulk lock as one committed unit.
// Any failure rolls back, so no observer ever sees a partially locked batch.
func (s *Service) lockInTransaction(ctx context.Context, ids []uint64, filter entity.TimeLogFilter, actorID uint64) (int64, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, errs.NewStoreError("begin lock transaction", err)
	}

	txRepo := s.uow.GetTimeLogRepository(txCtx)
	count, err := txRepo.ConditionalBulkLock(txCtx, ids, filter, actorID, s.timeProvider.Now())
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back lock transaction", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return 0, errs.NewStoreError("conditional bulk lock", err)
	}

	if count == 0 {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back empty lock transaction", map[string]any{
				"error": rbErr.Error(),
			})
		}
		return 0, nil
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return 0, errs.NewStoreError("commit lock transaction", err)
	}
	return count, nil
}

// PreviewLock returns the logs the filter currently matches so the caller
// can show what would be locked. The same filter evaluation backs the
// commit, which keeps the preview and the mutation consistent.
func (s *Service) PreviewLock(ctx context.Context, filter entity.TimeLogFilter, actor entity.Actor) ([]entity.TimeLog, error) {
	if actor.ID == 0 {
		return nil, errs.ErrNotAuthenticated
	}
	if !actor.IsAdmin() {
		return nil, errs.ErrNotAuthorized
	}

	logs, err := s.timeLogRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs for preview: %w", err)
	}
	return logs, nil
}

// missingIDs returns the requested ids that have no corresponding log
func missingIDs(requested []uint64, found []entity.TimeLog) []uint64 {
	present := make(map[uint64]struct{}, len(found))
	for i := range found {
		present[found[i].ID] = struct{}{}
	}
	var missing []uint64
	for _, id := range requested {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// lockedIDs returns the ids of logs that are already locked
func lockedIDs(logs []entity.TimeLog) []uint64 {
	var locked []uint64
	for i := range logs {
		if logs[i].Locked {
			locked = append(locked, logs[i].ID)
		}
	}
	return locked
}

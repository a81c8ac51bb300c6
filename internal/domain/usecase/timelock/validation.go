package timelock

import (
	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
)

// LockValidator provides validation for lock requests
type LockValidator struct{}

// NewLockValidator creates a new LockValidator
func NewLockValidator() *LockValidator {
	return &LockValidator{}
}

// ValidateLockRequest checks that the request is well-formed and the actor
// may perform it. A bounded date range is mandatory so the audit scope of
// the lock is explicit.
func (v *LockValidator) ValidateLockRequest(req usecase.LockRequest, actor entity.Actor) error {
	if actor.ID == 0 {
		return errs.ErrNotAuthenticated
	}
	if !actor.IsAdmin() {
		return errs.ErrNotAuthorized
	}
	if len(req.CandidateIDs) == 0 {
		return errs.NewValidationError("timeLogIds", errs.ErrEmptyCandidateSet)
	}
	if req.Filter.StartDate == nil {
		return errs.NewValidationError("startDate", errs.ErrMissingDateRange)
	}
	if req.Filter.EndDate == nil {
		return errs.NewValidationError("endDate", errs.ErrMissingDateRange)
	}
	return nil
}

// dedupeIDs removes duplicate candidate ids while preserving order, so a
// repeated id cannot inflate the requested batch size
func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

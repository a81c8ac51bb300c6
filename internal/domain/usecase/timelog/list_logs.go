package timelog

import (
	"context"
	"fmt"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
)

// ListOwn returns the actor's own logs, newest date first
func (u *UseCase) ListOwn(ctx context.Context, actor entity.Actor) ([]entity.TimeLog, error) {
	if actor.ID == 0 {
		return nil, errs.ErrNotAuthenticated
	}
	logs, err := u.timeLogRepo.FindByUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user logs: %w", err)
	}
	return logs, nil
}

// ListByFilter returns the logs matching the filter, joined with user and
// project names. Admin-only; this backs the admin table the lock and report
// workflows start from.
func (u *UseCase) ListByFilter(ctx context.Context, filter entity.TimeLogFilter, actor entity.Actor) ([]entity.TimeLog, error) {
	if actor.ID == 0 {
		return nil, errs.ErrNotAuthenticated
	}
	if !actor.IsAdmin() {
		return nil, errs.ErrNotAuthorized
	}
	logs, err := u.timeLogRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch filtered logs: %w", err)
	}
	return logs, nil
}

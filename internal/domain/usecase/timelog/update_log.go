package timelog

import (
	"context"
	"fmt"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
)

// UpdateLog modifies the mutable fields of a log the actor owns. A locked
// log can no longer be edited; ownership and project are immutable.
func (u *UseCase) UpdateLog(ctx context.Context, logID uint64, req usecase.UpdateLogRequest, actor entity.Actor) (*entity.TimeLog, error) {
	if actor.ID == 0 {
		return nil, errs.ErrNotAuthenticated
	}

	log, err := u.timeLogRepo.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if !log.IsOwnedBy(actor.ID) {
		return nil, errs.ErrNotAuthorized
	}
	if err := log.UpdateFields(req.Date, req.Hours, req.Description, u.timeProvider); err != nil {
		return nil, err
	}

	if err := u.timeLogRepo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to update time log: %w", err)
	}

	u.logger.Info("Time log updated", map[string]any{
		"log_id":  logID,
		"user_id": actor.ID,
	})
	return log, nil
}

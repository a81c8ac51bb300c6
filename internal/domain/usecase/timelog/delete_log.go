package timelog

import (
	"context"
	"fmt"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
)

// DeleteLog removes a log the actor owns. Deletion is rejected once the log
// is locked; the repository re-checks the lock flag in its conditional
// delete so a concurrent lock cannot race the removal.
func (u *UseCase) DeleteLog(ctx context.Context, logID uint64, actor entity.Actor) error {
	if actor.ID == 0 {
		return errs.ErrNotAuthenticated
	}

	log, err := u.timeLogRepo.GetByID(ctx, logID)
	if err != nil {
		return err
	}
	if !log.IsOwnedBy(actor.ID) {
		return errs.ErrNotAuthorized
	}
	if log.Locked {
		return errs.ErrLogLocked
	}

	if err := u.timeLogRepo.Delete(ctx, logID); err != nil {
		return fmt.Errorf("failed to delete time log: %w", err)
	}

	u.logger.Info("Time log deleted", map[string]any{
		"log_id":  logID,
		"user_id": actor.ID,
	})
	return nil
}

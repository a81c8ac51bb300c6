package timelog

import (
	"context"
	"fmt"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
)

// CreateLog registers a new unlocked time log owned by the actor. The
// project must be active and the actor assigned to it.
func (u *UseCase) CreateLog(ctx context.Context, req usecase.CreateLogRequest, actor entity.Actor) (*entity.TimeLog, error) {
	if actor.ID == 0 {
		return nil, errs.ErrNotAuthenticated
	}

	log, err := entity.NewTimeLog(actor.ID, req.ProjectID, req.Date, req.Hours, req.Description, u.timeProvider)
	if err != nil {
		return nil, fmt.Errorf("invalid time log: %w", err)
	}

	project, err := u.projectRepo.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if !project.IsActive() {
		return nil, errs.ErrProjectNotFound
	}
	assigned, err := u.projectRepo.IsUserAssigned(ctx, req.ProjectID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check project assignment: %w", err)
	}
	if !assigned {
		return nil, errs.ErrProjectNotFound
	}

	if err := u.timeLogRepo.Create(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to create time log: %w", err)
	}

	u.logger.Info("Time log created", map[string]any{
		"log_id":     log.ID,
		"user_id":    actor.ID,
		"project_id": req.ProjectID,
		"hours":      req.Hours,
	})
	return log, nil
}

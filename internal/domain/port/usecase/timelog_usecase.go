package usecase

import (
	"context"
	"time"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
)

// CreateLogRequest carries the fields needed to register worked hours
type CreateLogRequest struct {
	ProjectID   uint64
	Date        time.Time
	Hours       float64
	Description string
}

// UpdateLogRequest carries the mutable fields of an existing log
type UpdateLogRequest struct {
	Date        time.Time
	Hours       float64
	Description string
}

// TimeLogUseCase defines the time-log lifecycle operations. Ownership and
// lock-state guards live here: only the owner edits, and a locked log is
// terminal for edits and deletes.
type TimeLogUseCase interface {
	// CreateLog registers a new unlocked time log for the acting user
	CreateLog(ctx context.Context, req CreateLogRequest, actor entity.Actor) (*entity.TimeLog, error)

	// UpdateLog modifies date, hours or description of an unlocked log
	// owned by the actor
	UpdateLog(ctx context.Context, logID uint64, req UpdateLogRequest, actor entity.Actor) (*entity.TimeLog, error)

	// DeleteLog removes an unlocked log owned by the actor
	DeleteLog(ctx context.Context, logID uint64, actor entity.Actor) error

	// ListOwn returns the actor's own logs, newest date first
	ListOwn(ctx context.Context, actor entity.Actor) ([]entity.TimeLog, error)

	// ListByFilter returns the logs matching the filter, joined with
	// display names. Admin-only.
	ListByFilter(ctx context.Context, filter entity.TimeLogFilter, actor entity.Actor) ([]entity.TimeLog, error)
}

package persistence

import (
	"context"
	"time"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
)

// TimeLogRepository defines essential methods to interact with time-log data
type TimeLogRepository interface {
	// Create saves a new time log
	//
	// Possible errors:
	// - ErrUserNotFound: If the referenced user does not exist
	// - ErrProjectNotFound: If the referenced project does not exist
	// - ErrStoreUnavailable: If the store call fails or times out
	Create(ctx context.Context, log *entity.TimeLog) error

	// Update persists changes to the mutable fields of an existing time
	// log. Lock state is never written here; the write is conditional on
	// the log still being unlocked, so a lock committed after the
	// caller's read check is never reverted.
	//
	// Possible errors:
	// - ErrLogNotFound: If the log doesn't exist
	// - ErrLogLocked: If the log was locked since the caller's read
	// - ErrStoreUnavailable: If the store call fails or times out
	Update(ctx context.Context, log *entity.TimeLog) error

	// Delete removes an unlocked time log. The locked guard is enforced in
	// the usecase layer before this is called, and re-checked here with a
	// conditional delete so a locked log is never removed.
	//
	// Possible errors:
	// - ErrLogNotFound: If the log doesn't exist
	// - ErrLogLocked: If the log is locked
	// - ErrStoreUnavailable: If the store call fails or times out
	Delete(ctx context.Context, id uint64) error

	// GetByID retrieves a single time log by id, joined with user and
	// project display names
	//
	// Possible errors:
	// - ErrLogNotFound: If the log doesn't exist
	// - ErrStoreUnavailable: If the store call fails or times out
	GetByID(ctx context.Context, id uint64) (*entity.TimeLog, error)

	// FindByIDs retrieves the logs whose ids appear in the given set.
	// Missing ids are not an error here; the caller compares lengths.
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store call fails or times out
	FindByIDs(ctx context.Context, ids []uint64) ([]entity.TimeLog, error)

	// FindByFilter retrieves the logs matching the filter, joined with user
	// and project display names, ordered by date ascending then id ascending.
	// This is the read path behind both the admin preview and report
	// generation.
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store call fails or times out
	FindByFilter(ctx context.Context, filter entity.TimeLogFilter) ([]entity.TimeLog, error)

	// FindByUser retrieves all logs owned by a user, newest date first
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store call fails or times out
	FindByUser(ctx context.Context, userID uint64) ([]entity.TimeLog, error)

	// ConditionalBulkLock transitions every log that is in ids, currently
	// unlocked and still matching the filter constraints to the locked state
	// in one conditional bulk update, stamping lockedAt/lockedById. It
	// returns the number of rows actually transitioned. The locked = false
	// guard is the optimistic concurrency check: overlapping lock requests
	// can never both count the same row.
	//
	// Must run inside a surrounding unit-of-work transaction so the caller
	// can roll back on failure without a partially locked batch becoming
	// visible.
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store call fails or times out
	ConditionalBulkLock(ctx context.Context, ids []uint64, filter entity.TimeLogFilter, actorID uint64, now time.Time) (int64, error)
}

// UserRepository provides read access to user reference data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	// - ErrStoreUnavailable: If the store call fails or times out
	GetByID(ctx context.Context, id uint64) (*entity.User, error)
}

// ProjectRepository provides read access to project reference data
type ProjectRepository interface {
	// GetByID retrieves a project by ID
	//
	// Possible errors:
	// - ErrProjectNotFound: If the project doesn't exist
	// - ErrStoreUnavailable: If the store call fails or times out
	GetByID(ctx context.Context, id uint64) (*entity.Project, error)

	// IsUserAssigned reports whether the user is assigned to the project.
	// Logging time requires an active assignment.
	//
	// Possible errors:
	// - ErrStoreUnavailable: If the store call fails or times out
	IsUserAssigned(ctx context.Context, projectID, userID uint64) (bool, error)
}

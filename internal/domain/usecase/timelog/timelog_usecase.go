package timelog

import (
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/domain/port/persistence"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
)

// UseCase implements the time-log lifecycle operations: create and edit by
// the owner while unlocked, deletion rejected once locked, and the read
// paths behind both user and admin listings.
type UseCase struct {
	timeLogRepo  persistence.TimeLogRepository
	projectRepo  persistence.ProjectRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUseCase creates a new time-log use case
func NewUseCase(
	timeLogRepo persistence.TimeLogRepository,
	projectRepo persistence.ProjectRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		timeLogRepo:  timeLogRepo,
		projectRepo:  projectRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Ensure UseCase satisfies the usecase port
var _ usecase.TimeLogUseCase = (*UseCase)(nil)

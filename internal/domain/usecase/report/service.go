package report

import (
	"context"
	"fmt"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/domain/port/persistence"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
)

// Service ties report generation to the persistence read path. The same
// filter evaluation that backs the admin preview and the lock transition
// selects the exported rows, so totals shown before locking match what
// lands in the report.
type Service struct {
	timeLogRepo persistence.TimeLogRepository
	generator   *Generator
	logger      coreport.Logger
}

// NewService creates a new report service
func NewService(
	timeLogRepo persistence.TimeLogRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		timeLogRepo: timeLogRepo,
		generator:   NewGenerator(timeProvider),
		logger:      logger,
	}
}

// Ensure Service satisfies the usecase port
var _ usecase.ReportUseCase = (*Service)(nil)

// GenerateReport fetches the filtered set and builds the snapshot.
// Generation reads but never mutates; calling it twice over unchanged data
// yields identical rows and totals.
func (s *Service) GenerateReport(ctx context.Context, filter entity.TimeLogFilter, actor entity.Actor) (*entity.Report, error) {
	if actor.ID == 0 {
		return nil, errs.ErrNotAuthenticated
	}
	if !actor.IsAdmin() {
		return nil, errs.ErrNotAuthorized
	}

	logs, err := s.timeLogRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs for report: %w", err)
	}

	rep, err := s.generator.Build(filter, logs)
	if err != nil {
		s.logger.Warn("Report generation rejected", map[string]any{
			"error":    err.Error(),
			"actor_id": actor.ID,
		})
		return nil, err
	}

	s.logger.Info("Report generated", map[string]any{
		"report_id":   rep.Metadata.ReportID,
		"rows":        len(rep.Rows),
		"total_hours": rep.TotalHours,
		"actor_id":    actor.ID,
	})
	return rep, nil
}

package usecase

import (
	"context"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
)

// ReportUseCase defines report generation operations
type ReportUseCase interface {
	// GenerateReport builds a deterministic tabular snapshot of the logs
	// matching the filter. Admin-only; an empty filtered set is an error,
	// not an empty report.
	GenerateReport(ctx context.Context, filter entity.TimeLogFilter, actor entity.Actor) (*entity.Report, error)

	// RenderCSV renders a generated report as CSV with a trailing
	// total-hours row
	RenderCSV(report *entity.Report) ([]byte, error)

	// RenderXLSX renders a generated report as an XLSX workbook
	RenderXLSX(report *entity.Report) ([]byte, error)
}

package report

import (
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
)

// Date rendering formats for report artifacts
const (
	rowDateFormat    = "January 2, 2006"
	periodDateFormat = "2006-01-02"
)

// filterAxisAll marks an unconstrained filter axis in report metadata
const filterAxisAll = "all"

// Generator builds report snapshots from already-filtered time logs.
// Building a report never mutates a log and is referentially transparent
// apart from the report id and generation timestamp in the metadata.
type Generator struct {
	timeProvider coreport.TimeProvider
}

// NewGenerator creates a new report generator
func NewGenerator(timeProvider coreport.TimeProvider) *Generator {
	return &Generator{timeProvider: timeProvider}
}

// Build produces the ordered rows and exact total for the given logs.
// Rows are sorted by date ascending with id ascending as the tie-break.
// An empty input is an error: a zero-row report almost always means the
// caller's filter is wrong, and must not masquerade as a valid export.
func (g *Generator) Build(filter entity.TimeLogFilter, logs []entity.TimeLog) (*entity.Report, error) {
	if len(logs) == 0 {
		return nil, errs.ErrEmptyReport
	}

	ordered := make([]entity.TimeLog, len(logs))
	copy(ordered, logs)
	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := entity.StartOfDay(ordered[i].Date), entity.StartOfDay(ordered[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return ordered[i].ID < ordered[j].ID
	})

	rows := make([]entity.ReportRow, 0, len(ordered))
	var total float64
	for i := range ordered {
		log := &ordered[i]
		rows = append(rows, entity.ReportRow{
			LogID:        log.ID,
			Date:         log.Date.Format(rowDateFormat),
			UserName:     log.UserName,
			ProjectTitle: log.ProjectTitle,
			Hours:        log.Hours,
			Description:  log.Description,
			StatusLabel:  log.StatusLabel(),
		})
		total += log.Hours
	}

	return &entity.Report{
		Metadata:   g.buildMetadata(filter),
		Rows:       rows,
		TotalHours: total,
	}, nil
}

// buildMetadata echoes the filter and stamps provenance on the report
func (g *Generator) buildMetadata(filter entity.TimeLogFilter) entity.ReportMetadata {
	meta := entity.ReportMetadata{
		ReportID:    uuid.NewString(),
		GeneratedAt: g.timeProvider.Now(),
		Filters: entity.ReportFilters{
			UserID:    filterAxisAll,
			ProjectID: filterAxisAll,
		},
	}
	if filter.StartDate != nil {
		meta.Period.Start = filter.StartDate.Format(periodDateFormat)
	}
	if filter.EndDate != nil {
		meta.Period.End = filter.EndDate.Format(periodDateFormat)
	}
	if filter.UserID != nil {
		meta.Filters.UserID = strconv.FormatUint(*filter.UserID, 10)
	}
	if filter.ProjectID != nil {
		meta.Filters.ProjectID = strconv.FormatUint(*filter.ProjectID, 10)
	}
	return meta
}

// formatHours renders an hours value without trailing zeros
func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

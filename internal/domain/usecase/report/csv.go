package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
)

// csvHeader is the fixed column order of the CSV artifact
var csvHeader = []string{"Date", "User", "Project", "Hours", "Description", "Status"}

// RenderCSV renders the report as CSV: a header row, one row per log in
// report order, and a trailing total-hours summary row.
func (s *Service) RenderCSV(report *entity.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range report.Rows {
		record := []string{
			row.Date,
			row.UserName,
			row.ProjectTitle,
			formatHours(row.Hours),
			row.Description,
			row.StatusLabel,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	if err := w.Write([]string{"Total Hours", formatHours(report.TotalHours)}); err != nil {
		return nil, fmt.Errorf("failed to write csv total row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

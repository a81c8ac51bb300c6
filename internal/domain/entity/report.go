package entity

import (
	"time"
)

// ReportRow is a single line of a generated report, already joined with the
// user name and project title
type ReportRow struct {
	LogID        uint64  `json:"logId"`
	Date         string  `json:"date"`
	UserName     string  `json:"user"`
	ProjectTitle string  `json:"project"`
	Hours        float64 `json:"hours"`
	Description  string  `json:"description"`
	StatusLabel  string  `json:"status"`
}

// ReportPeriod echoes the date range the report covers
type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReportFilters echoes the optional constraints applied when the report was
// built; "all" means the axis was unconstrained
type ReportFilters struct {
	UserID    string `json:"userId"`
	ProjectID string `json:"projectId"`
}

// ReportMetadata describes when and over what selection a report was built
type ReportMetadata struct {
	ReportID    string        `json:"reportId"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Period      ReportPeriod  `json:"period"`
	Filters     ReportFilters `json:"filters"`
}

// Report is a deterministic tabular snapshot of a filtered set of time logs.
// Rows are ordered by date ascending with id as the tie-break, and TotalHours
// is the exact sum of hours across all rows. Building a report never mutates
// the underlying logs.
type Report struct {
	Metadata   ReportMetadata `json:"metadata"`
	Rows       []ReportRow    `json:"rows"`
	TotalHours float64        `json:"totalHours"`
}

package dto

// Report output formats
const (
	ReportFormatJSON = "json"
	ReportFormatCSV  = "csv"
	ReportFormatXLSX = "xlsx"
)

// GenerateReportRequest represents the API request for building a report
type GenerateReportRequest struct {
	Filter FilterRequest `json:"filter"`
	Format string        `json:"format"`
}

// IsValidReportFormat validates a requested report format
func IsValidReportFormat(format string) bool {
	return format == ReportFormatJSON || format == ReportFormatCSV || format == ReportFormatXLSX
}

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
)

const sheetName = "Time Logs"

// RenderXLSX renders the report as an XLSX workbook with the same columns
// and trailing total row as the CSV artifact.
func (s *Service) RenderXLSX(report *entity.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, header := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "F1", headerStyle)

	for i, row := range report.Rows {
		r := i + 2
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.Date)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.UserName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), row.ProjectTitle)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), row.Hours)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), row.Description)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", r), row.StatusLabel)
	}

	totalRow := len(report.Rows) + 2
	_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Total Hours")
	_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), report.TotalHours)

	_ = f.SetColWidth(sheetName, "A", "A", 20)
	_ = f.SetColWidth(sheetName, "B", "C", 25)
	_ = f.SetColWidth(sheetName, "D", "D", 10)
	_ = f.SetColWidth(sheetName, "E", "E", 40)
	_ = f.SetColWidth(sheetName, "F", "F", 12)

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}

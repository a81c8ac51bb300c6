package handler

import (
	"net/http"

	domainerr "github.com/omid-sharifi/timetrack/internal/domain/error"
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/dto"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/middleware"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
)

// Content types for rendered report artifacts
const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler handles report generation HTTP requests
type ReportHandler struct {
	reportService usecase.ReportUseCase
	reportConfig  config.ReportConfig
	logger        coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reportService usecase.ReportUseCase, reportConfig config.ReportConfig, logger coreport.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		reportConfig:  reportConfig,
		logger:        logger,
	}
}

// GenerateReport handles the POST /reports/time-logs endpoint. The format
// field selects the artifact: json (default), csv or xlsx.
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid report request format", map[string]any{
			"error": err.Error(),
		})
		respondBindError(c, err)
		return
	}

	format := req.Format
	if format == "" {
		format = h.reportConfig.DefaultFormat
	}
	if !dto.IsValidReportFormat(format) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid format. Must be one of: json, csv, xlsx",
		})
		return
	}

	filter, err := req.Filter.ToEntity()
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), filter, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.reportConfig.MaxRows > 0 && len(report.Rows) > h.reportConfig.MaxRows {
		h.logger.Warn("Report exceeds configured row limit", map[string]any{
			"rows":     len(report.Rows),
			"max_rows": h.reportConfig.MaxRows,
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Report exceeds the maximum row count; narrow the filter",
		})
		return
	}

	switch format {
	case dto.ReportFormatCSV:
		data, err := h.reportService.RenderCSV(report)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+h.reportConfig.CSVFileName+`"`)
		c.Data(http.StatusOK, contentTypeCSV, data)

	case dto.ReportFormatXLSX:
		data, err := h.reportService.RenderXLSX(report)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+h.reportConfig.XLSXFileName+`"`)
		c.Data(http.StatusOK, contentTypeXLSX, data)

	default:
		c.JSON(http.StatusOK, report)
	}
}

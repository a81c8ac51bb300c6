package handler

import (
	"net/http"
	"strconv"
	"time"

	domainerr "github.com/omid-sharifi/timetrack/internal/domain/error"
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/dto"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const logDateLayout = "2006-01-02"

// TimeLogHandler handles time-log lifecycle HTTP requests
type TimeLogHandler struct {
	timeLogService usecase.TimeLogUseCase
	logger         coreport.Logger
}

// NewTimeLogHandler creates a new time log handler instance
func NewTimeLogHandler(timeLogService usecase.TimeLogUseCase, logger coreport.Logger) *TimeLogHandler {
	return &TimeLogHandler{
		timeLogService: timeLogService,
		logger:         logger,
	}
}

// CreateTimeLog handles the POST /time-logs endpoint
func (h *TimeLogHandler) CreateTimeLog(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req dto.CreateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	date, err := time.Parse(logDateLayout, req.Date)
	if err != nil {
		respondError(c, domainerr.NewValidationError("date", domainerr.ErrInvalidDate))
		return
	}

	log, err := h.timeLogService.CreateLog(c.Request.Context(), usecase.CreateLogRequest{
		ProjectID:   req.ProjectID,
		Date:        date,
		Hours:       req.Hours,
		Description: req.Description,
	}, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TimeLogToResponse(log))
}

// UpdateTimeLog handles the PUT /time-logs/:id endpoint
func (h *TimeLogHandler) UpdateTimeLog(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	logID, ok := parseLogID(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	date, err := time.Parse(logDateLayout, req.Date)
	if err != nil {
		respondError(c, domainerr.NewValidationError("date", domainerr.ErrInvalidDate))
		return
	}

	log, err := h.timeLogService.UpdateLog(c.Request.Context(), logID, usecase.UpdateLogRequest{
		Date:        date,
		Hours:       req.Hours,
		Description: req.Description,
	}, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeLogToResponse(log))
}

// DeleteTimeLog handles the DELETE /time-logs/:id endpoint
func (h *TimeLogHandler) DeleteTimeLog(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	logID, ok := parseLogID(c)
	if !ok {
		return
	}

	if err := h.timeLogService.DeleteLog(c.Request.Context(), logID, actor); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListOwnTimeLogs handles the GET /time-logs endpoint
func (h *TimeLogHandler) ListOwnTimeLogs(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	logs, err := h.timeLogService.ListOwn(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeLogsToResponse(logs))
}

// ListAllTimeLogs handles the GET /time-logs/all endpoint
func (h *TimeLogHandler) ListAllTimeLogs(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var query dto.FilterRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	filter, err := query.ToEntity()
	if err != nil {
		respondError(c, err)
		return
	}

	logs, err := h.timeLogService.ListByFilter(c.Request.Context(), filter, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeLogsToResponse(logs))
}

// parseLogID extracts the :id path parameter, writing the error response on
// failure
func parseLogID(c *gin.Context) (uint64, bool) {
	idParam := c.Param("id")
	logID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil || logID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid time log ID format",
		})
		return 0, false
	}
	return logID, true
}

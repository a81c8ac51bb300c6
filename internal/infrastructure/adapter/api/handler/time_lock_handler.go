package handler

import (
	"net/http"

	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/dto"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TimeLockHandler handles lock-workflow HTTP requests
type TimeLockHandler struct {
	lockService usecase.TimeLockUseCase
	logger      coreport.Logger
}

// NewTimeLockHandler creates a new time lock handler instance
func NewTimeLockHandler(lockService usecase.TimeLockUseCase, logger coreport.Logger) *TimeLockHandler {
	return &TimeLockHandler{
		lockService: lockService,
		logger:      logger,
	}
}

// LockTimeLogs handles the POST /time-logs/lock endpoint
func (h *TimeLockHandler) LockTimeLogs(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	var req dto.LockTimeLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid lock request format", map[string]any{
			"error": err.Error(),
		})
		respondBindError(c, err)
		return
	}

	filter, err := req.Filter.ToEntity()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.lockService.LockTimeLogs(c.Request.Context(), usecase.LockRequest{
		Filter:       filter,
		CandidateIDs: req.TimeLogIDs,
	}, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LockTimeLogsResponse{
		Success:     true,
		LockedCount: result.Count,
		TimeLogs:    dto.TimeLogsToResponse(result.UpdatedLogs).TimeLogs,
	})
}

// PreviewLock handles the GET /time-logs/lock/preview endpoint
func (h *TimeLockHandler) PreviewLock(c *gin.Context) {
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

	logs, err := h.lockService.PreviewLock(c.Request.Context(), filter, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeLogsToResponse(logs))
}

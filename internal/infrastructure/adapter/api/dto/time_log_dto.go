package dto

import (
	"time"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
)

// CreateTimeLogRequest represents the API request for registering worked hours
type CreateTimeLogRequest struct {
	ProjectID   uint64  `json:"projectId" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Hours       float64 `json:"hours" binding:"required"`
	Description string  `json:"description"`
}

// UpdateTimeLogRequest represents the API request for modifying a time log
type UpdateTimeLogRequest struct {
	Date        string  `json:"date" binding:"required"`
	Hours       float64 `json:"hours" binding:"required"`
	Description string  `json:"description"`
}

// TimeLogResponse represents a time log in API responses
type TimeLogResponse struct {
	ID          uint64  `json:"id"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
	UserID      uint64  `json:"userId"`
	User        string  `json:"user,omitempty"`
	ProjectID   uint64  `json:"projectId"`
	Project     string  `json:"project,omitempty"`
	Locked      bool    `json:"locked"`
	LockedAt    *string `json:"lockedAt,omitempty"`
	LockedBy    string  `json:"lockedBy,omitempty"`
	Status      string  `json:"status"`
}

// TimeLogListResponse wraps a list of time logs
type TimeLogListResponse struct {
	TimeLogs []TimeLogResponse `json:"timeLogs"`
	Count    int               `json:"count"`
}

// TimeLogToResponse maps a domain time log to its API representation
func TimeLogToResponse(log *entity.TimeLog) TimeLogResponse {
	resp := TimeLogResponse{
		ID:          log.ID,
		Date:        log.Date.Format(filterDateLayout),
		Hours:       log.Hours,
		Description: log.Description,
		UserID:      log.UserID,
		User:        log.UserName,
		ProjectID:   log.ProjectID,
		Project:     log.ProjectTitle,
		Locked:      log.Locked,
		LockedBy:    log.LockedByName,
		Status:      log.StatusLabel(),
	}
	if log.LockedAt != nil {
		lockedAt := log.LockedAt.Format(time.RFC3339)
		resp.LockedAt = &lockedAt
	}
	return resp
}

// TimeLogsToResponse maps a slice of domain time logs to a list response
func TimeLogsToResponse(logs []entity.TimeLog) TimeLogListResponse {
	out := make([]TimeLogResponse, 0, len(logs))
	for i := range logs {
		out = append(out, TimeLogToResponse(&logs[i]))
	}
	return TimeLogListResponse{TimeLogs: out, Count: len(out)}
}

package dto

import (
	"time"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	domainerr "github.com/omid-sharifi/timetrack/internal/domain/error"
)

// filterDateLayout is the wire format for filter date bounds
const filterDateLayout = "2006-01-02"

// FilterRequest carries the optional selection constraints shared by the
// preview, lock, list and report endpoints. Empty fields mean "no constraint".
type FilterRequest struct {
	ProjectID  *uint64 `json:"projectId" form:"projectId"`
	UserID     *uint64 `json:"userId" form:"userId"`
	StartDate  string  `json:"startDate" form:"startDate"`
	EndDate    string  `json:"endDate" form:"endDate"`
	LockStatus string  `json:"lockStatus" form:"lockStatus"`
}

// ToEntity parses and validates the wire filter into the domain filter
func (f *FilterRequest) ToEntity() (entity.TimeLogFilter, error) {
	filter := entity.TimeLogFilter{
		ProjectID: f.ProjectID,
		UserID:    f.UserID,
	}

	if f.StartDate != "" {
		start, err := time.Parse(filterDateLayout, f.StartDate)
		if err != nil {
			return filter, domainerr.NewValidationError("startDate", domainerr.ErrInvalidDate)
		}
		filter.StartDate = &start
	}

	if f.EndDate != "" {
		end, err := time.Parse(filterDateLayout, f.EndDate)
		if err != nil {
			return filter, domainerr.NewValidationError("endDate", domainerr.ErrInvalidDate)
		}
		filter.EndDate = &end
	}

	if f.LockStatus != "" {
		if !entity.IsValidLockStatus(f.LockStatus) {
			return filter, domainerr.NewValidationError("lockStatus", domainerr.ErrInvalidRequest)
		}
		status := entity.LockStatus(f.LockStatus)
		filter.LockStatus = &status
	}

	return filter, nil
}

package dto

// LockTimeLogsRequest represents the API request for locking a batch of time
// logs. The ids are the explicit candidate set; the filter is re-applied at
// commit time so the batch can only shrink, never widen.
type LockTimeLogsRequest struct {
	TimeLogIDs []uint64      `json:"timeLogIds" binding:"required"`
	Filter     FilterRequest `json:"filter" binding:"required"`
}

// LockTimeLogsResponse represents the outcome of a lock operation
type LockTimeLogsResponse struct {
	Success     bool              `json:"success"`
	LockedCount int64             `json:"lockedCount"`
	TimeLogs    []TimeLogResponse `json:"timeLogs"`
}

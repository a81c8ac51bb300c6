package entity

import (
	"time"

	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	tport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
)

// Lock state labels used in exports and API responses
const (
	StatusLabelLocked   = "Locked"
	StatusLabelUnlocked = "Unlocked"
)

// TimeLog represents a single dated record of hours worked by a user on a project.
// UserID and ProjectID are fixed at creation; only date, hours, description and
// the lock state may change afterwards.
type TimeLog struct {
	ID          uint64     // Unique identifier for the time log
	Date        time.Time  // Calendar date the work was performed (day granularity)
	Hours       float64    // Positive number of hours worked
	Description string     // Optional free text
	UserID      uint64     // Owning user
	ProjectID   uint64     // Project the hours were logged against
	Locked      bool       // Whether the log has been frozen by an admin
	LockedAt    *time.Time // When the log was locked (nil while unlocked)
	LockedByID  *uint64    // Admin who locked the log (nil while unlocked)
	CreatedAt   time.Time  // When the log was created
	UpdatedAt   time.Time  // When the log was last modified

	// Display names populated by read paths that join related tables.
	// Empty on logs loaded without joins.
	UserName     string
	ProjectTitle string
	LockedByName string
}

// NewTimeLog creates a new unlocked time log with basic validation
func NewTimeLog(
	userID uint64,
	projectID uint64,
	date time.Time,
	hours float64,
	description string,
	timeProvider tport.TimeProvider,
) (*TimeLog, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if projectID == 0 {
		return nil, errs.ErrInvalidProjectID
	}
	if date.IsZero() {
		return nil, errs.ErrInvalidDate
	}
	if hours <= 0 {
		return nil, errs.ErrInvalidHours
	}

	now := timeProvider.Now()
	return &TimeLog{
		Date:        StartOfDay(date),
		Hours:       hours,
		Description: description,
		UserID:      userID,
		ProjectID:   projectID,
		Locked:      false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOwnedBy reports whether the log belongs to the given user
func (l *TimeLog) IsOwnedBy(userID uint64) bool {
	return l.UserID == userID
}

// CanEdit reports whether the given user may still modify this log.
// Only the owner may edit, and locking is terminal for edits.
func (l *TimeLog) CanEdit(userID uint64) bool {
	return l.IsOwnedBy(userID) && !l.Locked
}

// ApplyLock transitions the log from unlocked to locked, recording provenance.
// Locking an already-locked log is rejected and leaves LockedAt/LockedByID
// untouched.
func (l *TimeLog) ApplyLock(actorID uint64, timeProvider tport.TimeProvider) error {
	if l.Locked {
		return errs.ErrAlreadyLocked
	}
	now := timeProvider.Now()
	l.Locked = true
	l.LockedAt = &now
	l.LockedByID = &actorID
	l.UpdatedAt = now
	return nil
}

// UpdateFields modifies the mutable fields of an unlocked log.
// UserID and ProjectID cannot be changed here.
func (l *TimeLog) UpdateFields(date time.Time, hours float64, description string, timeProvider tport.TimeProvider) error {
	if l.Locked {
		return errs.ErrLogLocked
	}
	if date.IsZero() {
		return errs.ErrInvalidDate
	}
	if hours <= 0 {
		return errs.ErrInvalidHours
	}
	l.Date = StartOfDay(date)
	l.Hours = hours
	l.Description = description
	l.UpdatedAt = timeProvider.Now()
	return nil
}

// StatusLabel returns the two-valued display label derived from the lock flag
func (l *TimeLog) StatusLabel() string {
	if l.Locked {
		return StatusLabelLocked
	}
	return StatusLabelUnlocked
}

// LockStateConsistent verifies the all-or-nothing invariant on the lock
// provenance fields: locked implies both LockedAt and LockedByID are set,
// unlocked implies both are absent.
func (l *TimeLog) LockStateConsistent() bool {
	if l.Locked {
		return l.LockedAt != nil && l.LockedByID != nil
	}
	return l.LockedAt == nil && l.LockedByID == nil
}

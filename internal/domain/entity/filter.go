package entity

import (
	"time"
)

// LockStatus restricts a filter to locked-only or unlocked-only logs
type LockStatus string

// Lock status constants
const (
	LockStatusLocked   LockStatus = "locked"
	LockStatusUnlocked LockStatus = "unlocked"
)

// IsValidLockStatus validates a lock status value
func IsValidLockStatus(s string) bool {
	return s == string(LockStatusLocked) || s == string(LockStatusUnlocked)
}

// TimeLogFilter is a value object describing which time logs belong to a
// selection. Nil fields mean "no constraint on this axis". The same filter
// backs the admin preview, the lock transition and report generation, so
// what the admin saw is what gets locked or exported.
type TimeLogFilter struct {
	ProjectID  *uint64
	UserID     *uint64
	StartDate  *time.Time // Inclusive, normalized to start of day
	EndDate    *time.Time // Inclusive, normalized to end of day
	LockStatus *LockStatus
}

// HasDateRange reports whether both date bounds are present.
// Lock operations require a bounded range so the audit scope is explicit.
func (f TimeLogFilter) HasDateRange() bool {
	return f.StartDate != nil && f.EndDate != nil
}

// Matches decides membership of a single log in the filtered set.
// It is a pure function of (filter, log): all specified constraints must
// hold, absent constraints always pass, and date comparison happens at day
// granularity with inclusive boundaries.
func (f TimeLogFilter) Matches(log *TimeLog) bool {
	if f.ProjectID != nil && log.ProjectID != *f.ProjectID {
		return false
	}
	if f.UserID != nil && log.UserID != *f.UserID {
		return false
	}
	if f.LockStatus != nil {
		if *f.LockStatus == LockStatusLocked && !log.Locked {
			return false
		}
		if *f.LockStatus == LockStatusUnlocked && log.Locked {
			return false
		}
	}

	day := StartOfDay(log.Date)
	if f.StartDate != nil && day.Before(StartOfDay(*f.StartDate)) {
		return false
	}
	if f.EndDate != nil && day.After(EndOfDay(*f.EndDate)) {
		return false
	}
	return true
}

// StartOfDay truncates a timestamp to midnight of its calendar day
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the timestamp's day
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

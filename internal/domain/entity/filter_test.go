package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterMatches(t *testing.T) {
	projectID := uint64(3)
	userID := uint64(7)
	start := date(2025, 3, 1)
	end := date(2025, 3, 31)
	locked := LockStatusLocked
	unlocked := LockStatusUnlocked

	log := &TimeLog{
		ID:        1,
		Date:      date(2025, 3, 15),
		UserID:    7,
		ProjectID: 3,
		Locked:    false,
	}

	t.Run("Empty filter matches everything", func(t *testing.T) {
		assert.True(t, TimeLogFilter{}.Matches(log))
	})

	t.Run("All constraints must hold", func(t *testing.T) {
		filter := TimeLogFilter{
			ProjectID:  &projectID,
			UserID:     &userID,
			StartDate:  &start,
			EndDate:    &end,
			LockStatus: &unlocked,
		}
		assert.True(t, filter.Matches(log))

		otherProject := uint64(4)
		filter.ProjectID = &otherProject
		assert.False(t, filter.Matches(log))
	})

	t.Run("User axis", func(t *testing.T) {
		otherUser := uint64(8)
		assert.True(t, TimeLogFilter{UserID: &userID}.Matches(log))
		assert.False(t, TimeLogFilter{UserID: &otherUser}.Matches(log))
	})

	t.Run("Lock status axis", func(t *testing.T) {
		assert.True(t, TimeLogFilter{LockStatus: &unlocked}.Matches(log))
		assert.False(t, TimeLogFilter{LockStatus: &locked}.Matches(log))

		lockedLog := &TimeLog{Date: log.Date, UserID: 7, ProjectID: 3, Locked: true}
		assert.True(t, TimeLogFilter{LockStatus: &locked}.Matches(lockedLog))
		assert.False(t, TimeLogFilter{LockStatus: &unlocked}.Matches(lockedLog))
	})

	t.Run("Date boundaries are inclusive", func(t *testing.T) {
		filter := TimeLogFilter{StartDate: &start, EndDate: &end}

		onStart := &TimeLog{Date: date(2025, 3, 1)}
		onEnd := &TimeLog{Date: date(2025, 3, 31)}
		before := &TimeLog{Date: date(2025, 2, 28)}
		after := &TimeLog{Date: date(2025, 4, 1)}

		assert.True(t, filter.Matches(onStart))
		assert.True(t, filter.Matches(onEnd))
		assert.False(t, filter.Matches(before))
		assert.False(t, filter.Matches(after))
	})

	t.Run("Date comparison is day-granular", func(t *testing.T) {
		// A log timestamped late on the end day still matches
		filter := TimeLogFilter{StartDate: &start, EndDate: &end}
		lateOnEnd := &TimeLog{Date: time.Date(2025, 3, 31, 23, 30, 0, 0, time.UTC)}
		assert.True(t, filter.Matches(lateOnEnd))

		// A start bound timestamped mid-day does not exclude logs from
		// earlier that same day
		midDayStart := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)
		filter = TimeLogFilter{StartDate: &midDayStart}
		earlyOnStart := &TimeLog{Date: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}
		assert.True(t, filter.Matches(earlyOnStart))
	})

	t.Run("Open-ended ranges", func(t *testing.T) {
		assert.True(t, TimeLogFilter{StartDate: &start}.Matches(log))
		assert.True(t, TimeLogFilter{EndDate: &end}.Matches(log))
	})
}

func TestHasDateRange(t *testing.T) {
	start := date(2025, 3, 1)
	end := date(2025, 3, 31)

	assert.False(t, TimeLogFilter{}.HasDateRange())
	assert.False(t, TimeLogFilter{StartDate: &start}.HasDateRange())
	assert.False(t, TimeLogFilter{EndDate: &end}.HasDateRange())
	assert.True(t, TimeLogFilter{StartDate: &start, EndDate: &end}.HasDateRange())
}

func TestDayBoundaries(t *testing.T) {
	ts := time.Date(2025, 3, 15, 14, 45, 30, 123, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), StartOfDay(ts))

	endOfDay := EndOfDay(ts)
	assert.Equal(t, 23, endOfDay.Hour())
	assert.Equal(t, 59, endOfDay.Minute())
	assert.Equal(t, 59, endOfDay.Second())
	// The next instant is the following day
	assert.Equal(t, time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC), endOfDay.Add(time.Nanosecond))
}

func TestIsValidLockStatus(t *testing.T) {
	assert.True(t, IsValidLockStatus("locked"))
	assert.True(t, IsValidLockStatus("unlocked"))
	assert.False(t, IsValidLockStatus(""))
	assert.False(t, IsValidLockStatus("Locked"))
	assert.False(t, IsValidLockStatus("open"))
}

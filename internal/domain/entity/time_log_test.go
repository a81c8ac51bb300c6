package entity

import (
	"testing"
	"time"

	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	coremocks "github.com/omid-sharifi/timetrack/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeLog(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	workDate := time.Date(2025, 3, 3, 9, 45, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		log, err := NewTimeLog(7, 3, workDate, 5.5, "API integration", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), log.UserID)
		assert.Equal(t, uint64(3), log.ProjectID)
		assert.Equal(t, 5.5, log.Hours)
		assert.False(t, log.Locked)
		assert.Nil(t, log.LockedAt)
		assert.Nil(t, log.LockedByID)
		assert.Equal(t, fixedTime, log.CreatedAt)
		// The date is normalized to the start of its calendar day
		assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), log.Date)
	})

	t.Run("Zero user ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		log, err := NewTimeLog(0, 3, workDate, 5.5, "", mockTime)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Zero project ID", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		log, err := NewTimeLog(7, 0, workDate, 5.5, "", mockTime)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrInvalidProjectID)
	})

	t.Run("Zero date", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		log, err := NewTimeLog(7, 3, time.Time{}, 5.5, "", mockTime)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})

	t.Run("Non-positive hours", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		for _, hours := range []float64{0, -1, -0.25} {
			log, err := NewTimeLog(7, 3, workDate, hours, "", mockTime)
			assert.Nil(t, log)
			assert.ErrorIs(t, err, errs.ErrInvalidHours)
		}
	})
}

func TestApplyLock(t *testing.T) {
	lockTime := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Locks an unlocked log with provenance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(lockTime).Once()

		log := &TimeLog{ID: 1, UserID: 7, Locked: false}

		err := log.ApplyLock(99, mockTime)

		require.NoError(t, err)
		assert.True(t, log.Locked)
		require.NotNil(t, log.LockedAt)
		assert.Equal(t, lockTime, *log.LockedAt)
		require.NotNil(t, log.LockedByID)
		assert.Equal(t, uint64(99), *log.LockedByID)
		assert.True(t, log.LockStateConsistent())
	})

	t.Run("Locking an already-locked log preserves original provenance", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		originalTime := lockTime.Add(-24 * time.Hour)
		originalAdmin := uint64(42)
		log := &TimeLog{ID: 1, Locked: true, LockedAt: &originalTime, LockedByID: &originalAdmin}

		err := log.ApplyLock(99, mockTime)

		assert.ErrorIs(t, err, errs.ErrAlreadyLocked)
		assert.Equal(t, originalTime, *log.LockedAt)
		assert.Equal(t, originalAdmin, *log.LockedByID)
	})
}

func TestUpdateFields(t *testing.T) {
	fixedTime := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	newDate := time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)

	t.Run("Updates mutable fields of an unlocked log", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		log := &TimeLog{ID: 1, UserID: 7, ProjectID: 3, Hours: 2, Description: "old"}

		err := log.UpdateFields(newDate, 6.5, "new text", mockTime)

		require.NoError(t, err)
		assert.Equal(t, 6.5, log.Hours)
		assert.Equal(t, "new text", log.Description)
		assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), log.Date)
		assert.Equal(t, fixedTime, log.UpdatedAt)
		// Ownership and project never change through an update
		assert.Equal(t, uint64(7), log.UserID)
		assert.Equal(t, uint64(3), log.ProjectID)
	})

	t.Run("Locked log rejects updates", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		log := &TimeLog{ID: 1, Locked: true, Hours: 2}

		err := log.UpdateFields(newDate, 6.5, "new text", mockTime)

		assert.ErrorIs(t, err, errs.ErrLogLocked)
		assert.Equal(t, float64(2), log.Hours)
	})

	t.Run("Invalid hours rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		log := &TimeLog{ID: 1}

		err := log.UpdateFields(newDate, 0, "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidHours)
	})
}

func TestOwnershipAndStatus(t *testing.T) {
	t.Run("CanEdit requires ownership and unlocked state", func(t *testing.T) {
		log := &TimeLog{ID: 1, UserID: 7}

		assert.True(t, log.CanEdit(7))
		assert.False(t, log.CanEdit(8))

		log.Locked = true
		assert.False(t, log.CanEdit(7))
	})

	t.Run("StatusLabel follows lock flag", func(t *testing.T) {
		log := &TimeLog{}
		assert.Equal(t, StatusLabelUnlocked, log.StatusLabel())

		log.Locked = true
		assert.Equal(t, StatusLabelLocked, log.StatusLabel())
	})

	t.Run("LockStateConsistent detects partial provenance", func(t *testing.T) {
		now := time.Now()
		admin := uint64(1)

		assert.True(t, (&TimeLog{}).LockStateConsistent())
		assert.True(t, (&TimeLog{Locked: true, LockedAt: &now, LockedByID: &admin}).LockStateConsistent())
		assert.False(t, (&TimeLog{Locked: true, LockedAt: &now}).LockStateConsistent())
		assert.False(t, (&TimeLog{Locked: false, LockedAt: &now, LockedByID: &admin}).LockStateConsistent())
	})
}

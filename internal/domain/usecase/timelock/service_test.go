package timelock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	"github.com/omid-sharifi/timetrack/internal/domain/port/usecase"
	coremocks "github.com/omid-sharifi/timetrack/mocks/port/core"
	persistencemocks "github.com/omid-sharifi/timetrack/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceMocks struct {
	uow      *persistencemocks.MockUnitOfWork
	repo     *persistencemocks.MockTimeLogRepository
	txRepo   *persistencemocks.MockTimeLogRepository
	timeProv *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newServiceWithMocks(t *testing.T) (*Service, serviceMocks) {
	m := serviceMocks{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		repo:     persistencemocks.NewMockTimeLogRepository(t),
		txRepo:   persistencemocks.NewMockTimeLogRepository(t),
		timeProv: coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(m.uow, m.repo, m.timeProv, m.logger), m
}

type testTxKey struct{}

func lockRequest(ids ...uint64) usecase.LockRequest {
	return usecase.LockRequest{Filter: boundedFilter(), CandidateIDs: ids}
}

func TestLockTimeLogs(t *testing.T) {
	ctx := context.Background()
	admin := entity.Actor{ID: 99, Role: entity.RoleAdmin}
	lockTime := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	unlockedLogs := []entity.TimeLog{
		{ID: 1, UserID: 7, ProjectID: 3, Hours: 5.5, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{ID: 2, UserID: 7, ProjectID: 3, Hours: 6.5, Date: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)},
	}

	lockedCopy := func() []entity.TimeLog {
		out := make([]entity.TimeLog, len(unlockedLogs))
		copy(out, unlockedLogs)
		adminID := admin.ID
		for i := range out {
			out[i].Locked = true
			out[i].LockedAt = &lockTime
			out[i].LockedByID = &adminID
		}
		return out
	}

	t.Run("Locks all candidates and reports the count", func(t *testing.T) {
		service, m := newServiceWithMocks(t)
		req := lockRequest(1, 2)
		txCtx := context.WithValue(ctx, testTxKey{}, "tx")

		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(unlockedLogs, nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTimeLogRepository(txCtx).Return(m.txRepo).Once()
		m.timeProv.EXPECT().Now().Return(lockTime).Once()
		m.txRepo.EXPECT().ConditionalBulkLock(txCtx, []uint64{1, 2}, req.Filter, admin.ID, lockTime).Return(int64(2), nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(lockedCopy(), nil).Once()

		result, err := service.LockTimeLogs(ctx, req, admin)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Count)
		require.Len(t, result.UpdatedLogs, 2)
		for _, log := range result.UpdatedLogs {
			assert.True(t, log.Locked)
			require.NotNil(t, log.LockedByID)
			assert.Equal(t, admin.ID, *log.LockedByID)
		}
	})

	t.Run("Duplicate candidate ids are collapsed", func(t *testing.T) {
		service, m := newServiceWithMocks(t)
		req := lockRequest(1, 1, 2, 2)
		txCtx := context.WithValue(ctx, testTxKey{}, "tx")

		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(unlockedLogs, nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTimeLogRepository(txCtx).Return(m.txRepo).Once()
		m.timeProv.EXPECT().Now().Return(lockTime).Once()
		m.txRepo.EXPECT().ConditionalBulkLock(txCtx, []uint64{1, 2}, req.Filter, admin.ID, lockTime).Return(int64(2), nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(lockedCopy(), nil).Once()

		result, err := service.LockTimeLogs(ctx, req, admin)

		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Count)
	})

	t.Run("Non-admin actor is rejected before any store access", func(t *testing.T) {
		service, _ := newServiceWithMocks(t)

		result, err := service.LockTimeLogs(ctx, lockRequest(1), entity.Actor{ID: 7, Role: entity.RoleUser})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("Unknown candidate ids fail with the missing set", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2, 8}).Return(unlockedLogs, nil).Once()

		result, err := service.LockTimeLogs(ctx, lockRequest(1, 2, 8), admin)

		assert.Nil(t, result)
		var nf *errs.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, []uint64{8}, nf.MissingIDs)
	})

	t.Run("Already-locked candidates fail with the conflicting set", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		logs := lockedCopy()
		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(logs, nil).Once()

		result, err := service.LockTimeLogs(ctx, lockRequest(1, 2), admin)

		assert.Nil(t, result)
		var lc *errs.LockConflictError
		require.ErrorAs(t, err, &lc)
		assert.Equal(t, []uint64{1, 2}, lc.LockedIDs)
	})

	t.Run("Zero transitioned rows rolls back and reports a no-op", func(t *testing.T) {
		service, m := newServiceWithMocks(t)
		req := lockRequest(1, 2)
		txCtx := context.WithValue(ctx, testTxKey{}, "tx")

		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(unlockedLogs, nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTimeLogRepository(txCtx).Return(m.txRepo).Once()
		m.timeProv.EXPECT().Now().Return(lockTime).Once()
		m.txRepo.EXPECT().ConditionalBulkLock(txCtx, []uint64{1, 2}, req.Filter, admin.ID, lockTime).Return(int64(0), nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := service.LockTimeLogs(ctx, req, admin)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrNothingLocked)
	})

	t.Run("Store failure during bulk lock rolls back", func(t *testing.T) {
		service, m := newServiceWithMocks(t)
		req := lockRequest(1, 2)
		txCtx := context.WithValue(ctx, testTxKey{}, "tx")
		storeErr := errors.New("connection reset")

		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(unlockedLogs, nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetTimeLogRepository(txCtx).Return(m.txRepo).Once()
		m.timeProv.EXPECT().Now().Return(lockTime).Once()
		m.txRepo.EXPECT().ConditionalBulkLock(txCtx, []uint64{1, 2}, req.Filter, admin.ID, lockTime).Return(int64(0), storeErr).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := service.LockTimeLogs(ctx, req, admin)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("Begin failure surfaces as a store error", func(t *testing.T) {
		service, m := newServiceWithMocks(t)

		m.repo.EXPECT().FindByIDs(ctx, []uint64{1, 2}).Return(unlockedLogs, nil).Once()
		m.uow.EXPECT().Begin(ctx).Return(nil, errors.New("too many connections")).Once()

		result, err := service.LockTimeLogs(ctx, lockRequest(1, 2), admin)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
	})

	t.Run("Candidate fetch failure propagates", func(t *testing.T) {
		service, m := newServiceWithMocks(t)
		fetchErr := errors.New("query timeout")

		m.repo.EXPECT().FindByIDs(ctx, []uint64{1}).Return(nil, fetchErr).Once()

		result, err := service.LockTimeLogs(ctx, lockRequest(1), admin)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, fetchErr)
	})
}

func TestPreviewLock(t *testing.T) {
	ctx := context.Background()
	admin := entity.Actor{ID: 99, Role: entity.RoleAdmin}

	t.Run("Returns the currently matching logs", func(t *testing.T) {
		service, m := newServiceWithMocks(t)
		filter := boundedFilter()
		matching := []entity.TimeLog{{ID: 1}, {ID: 2}}

		m.repo.EXPECT().FindByFilter(ctx, filter).Return(matching, nil).Once()

		logs, err := service.PreviewLock(ctx, filter, admin)

		require.NoError(t, err)
		assert.Equal(t, matching, logs)
	})

	t.Run("Anonymous actor rejected", func(t *testing.T) {
		service, _ := newServiceWithMocks(t)

		logs, err := service.PreviewLock(ctx, boundedFilter(), entity.Actor{})

		assert.Nil(t, logs)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("Non-admin actor rejected", func(t *testing.T) {
		service, _ := newServiceWithMocks(t)

		logs, err := service.PreviewLock(ctx, boundedFilter(), entity.Actor{ID: 7, Role: entity.RoleUser})

		assert.Nil(t, logs)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		service, m := newServiceWithMocks(t)
		storeErr := errors.New("connection refused")

		m.repo.EXPECT().FindByFilter(ctx, mock.Anything).Return(nil, storeErr).Once()

		logs, err := service.PreviewLock(ctx, boundedFilter(), admin)

		assert.Nil(t, logs)
		assert.ErrorIs(t, err, storeErr)
	})
}

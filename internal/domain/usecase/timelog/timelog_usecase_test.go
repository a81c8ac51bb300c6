package timelog

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

type usecaseMocks struct {
	timeLogRepo *persistencemocks.MockTimeLogRepository
	projectRepo *persistencemocks.MockProjectRepository
	timeProv    *coremocks.MockTimeProvider
}

func newUseCaseWithMocks(t *testing.T) (*UseCase, usecaseMocks) {
	m := usecaseMocks{
		timeLogRepo: persistencemocks.NewMockTimeLogRepository(t),
		projectRepo: persistencemocks.NewMockProjectRepository(t),
		timeProv:    coremocks.NewMockTimeProvider(t),
	}
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	return NewUseCase(m.timeLogRepo, m.projectRepo, m.timeProv, logger), m
}

var (
	owner      = entity.Actor{ID: 7, Role: entity.RoleUser}
	fixedNow   = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	workDate   = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	activeProj = &entity.Project{ID: 3, Title: "Website Redesign", Status: entity.ProjectStatusActive}
)

func TestCreateLog(t *testing.T) {
	ctx := context.Background()
	req := usecase.CreateLogRequest{ProjectID: 3, Date: workDate, Hours: 5.5, Description: "API integration"}

	t.Run("Creates an unlocked log for the actor", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)

		m.timeProv.EXPECT().Now().Return(fixedNow).Once()
		m.projectRepo.EXPECT().GetByID(ctx, uint64(3)).Return(activeProj, nil).Once()
		m.projectRepo.EXPECT().IsUserAssigned(ctx, uint64(3), owner.ID).Return(true, nil).Once()
		m.timeLogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.TimeLog")).Return(nil).Once()

		log, err := uc.CreateLog(ctx, req, owner)

		require.NoError(t, err)
		assert.Equal(t, owner.ID, log.UserID)
		assert.Equal(t, uint64(3), log.ProjectID)
		assert.False(t, log.Locked)
	})

	t.Run("Anonymous actor rejected", func(t *testing.T) {
		uc, _ := newUseCaseWithMocks(t)

		log, err := uc.CreateLog(ctx, req, entity.Actor{})

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("Invalid hours rejected before any store access", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		m.timeProv.EXPECT().Now().Return(fixedNow).Maybe()

		bad := req
		bad.Hours = 0
		log, err := uc.CreateLog(ctx, bad, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrInvalidHours)
	})

	t.Run("Archived project rejected", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		archived := &entity.Project{ID: 3, Status: entity.ProjectStatusArchived}

		m.timeProv.EXPECT().Now().Return(fixedNow).Once()
		m.projectRepo.EXPECT().GetByID(ctx, uint64(3)).Return(archived, nil).Once()

		log, err := uc.CreateLog(ctx, req, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	})

	t.Run("Unassigned actor rejected", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)

		m.timeProv.EXPECT().Now().Return(fixedNow).Once()
		m.projectRepo.EXPECT().GetByID(ctx, uint64(3)).Return(activeProj, nil).Once()
		m.projectRepo.EXPECT().IsUserAssigned(ctx, uint64(3), owner.ID).Return(false, nil).Once()

		log, err := uc.CreateLog(ctx, req, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	})

	t.Run("Unknown project propagates", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)

		m.timeProv.EXPECT().Now().Return(fixedNow).Once()
		m.projectRepo.EXPECT().GetByID(ctx, uint64(3)).Return(nil, errs.ErrProjectNotFound).Once()

		log, err := uc.CreateLog(ctx, req, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	})
}

func TestUpdateLog(t *testing.T) {
	ctx := context.Background()
	req := usecase.UpdateLogRequest{Date: workDate, Hours: 6.5, Description: "Frontend work"}

	t.Run("Updates an unlocked log owned by the actor", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		existing := &entity.TimeLog{ID: 1, UserID: owner.ID, ProjectID: 3, Hours: 5.5}

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existing, nil).Once()
		m.timeProv.EXPECT().Now().Return(fixedNow).Once()
		m.timeLogRepo.EXPECT().Update(ctx, existing).Return(nil).Once()

		log, err := uc.UpdateLog(ctx, 1, req, owner)

		require.NoError(t, err)
		assert.Equal(t, 6.5, log.Hours)
		assert.Equal(t, "Frontend work", log.Description)
	})

	t.Run("Anonymous actor rejected", func(t *testing.T) {
		uc, _ := newUseCaseWithMocks(t)

		log, err := uc.UpdateLog(ctx, 1, req, entity.Actor{})

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("Non-owner rejected", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		existing := &entity.TimeLog{ID: 1, UserID: 8}

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existing, nil).Once()

		log, err := uc.UpdateLog(ctx, 1, req, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("Locked log rejected", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		existing := &entity.TimeLog{ID: 1, UserID: owner.ID, Locked: true}

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existing, nil).Once()

		log, err := uc.UpdateLog(ctx, 1, req, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrLogLocked)
	})

	t.Run("Lock landing between fetch and write rejects the update", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		// Unlocked at read time; the repository's conditional write finds
		// the row locked and refuses it.
		existing := &entity.TimeLog{ID: 1, UserID: owner.ID, ProjectID: 3, Hours: 5.5}

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existing, nil).Once()
		m.timeProv.EXPECT().Now().Return(fixedNow).Once()
		m.timeLogRepo.EXPECT().Update(ctx, existing).Return(errs.ErrLogLocked).Once()

		log, err := uc.UpdateLog(ctx, 1, req, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrLogLocked)
	})

	t.Run("Unknown log propagates", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(nil, errs.ErrLogNotFound).Once()

		log, err := uc.UpdateLog(ctx, 1, req, owner)

		assert.Nil(t, log)
		assert.ErrorIs(t, err, errs.ErrLogNotFound)
	})
}

func TestDeleteLog(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes an unlocked log owned by the actor", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		existing := &entity.TimeLog{ID: 1, UserID: owner.ID}

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existing, nil).Once()
		m.timeLogRepo.EXPECT().Delete(ctx, uint64(1)).Return(nil).Once()

		assert.NoError(t, uc.DeleteLog(ctx, 1, owner))
	})

	t.Run("Anonymous actor rejected", func(t *testing.T) {
		uc, _ := newUseCaseWithMocks(t)

		assert.ErrorIs(t, uc.DeleteLog(ctx, 1, entity.Actor{}), errs.ErrNotAuthenticated)
	})

	t.Run("Non-owner rejected", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		existing := &entity.TimeLog{ID: 1, UserID: 8}

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existing, nil).Once()

		assert.ErrorIs(t, uc.DeleteLog(ctx, 1, owner), errs.ErrNotAuthorized)
	})

	t.Run("Locked log rejected", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		existing := &entity.TimeLog{ID: 1, UserID: owner.ID, Locked: true}

		m.timeLogRepo.EXPECT().GetByID(ctx, uint64(1)).Return(existing, nil).Once()

		assert.ErrorIs(t, uc.DeleteLog(ctx, 1, owner), errs.ErrLogLocked)
	})
}

func TestListLogs(t *testing.T) {
	ctx := context.Background()
	admin := entity.Actor{ID: 99, Role: entity.RoleAdmin}

	t.Run("ListOwn returns the actor's logs", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		own := []entity.TimeLog{{ID: 2, UserID: owner.ID}, {ID: 1, UserID: owner.ID}}

		m.timeLogRepo.EXPECT().FindByUser(ctx, owner.ID).Return(own, nil).Once()

		logs, err := uc.ListOwn(ctx, owner)

		require.NoError(t, err)
		assert.Equal(t, own, logs)
	})

	t.Run("ListOwn rejects anonymous actors", func(t *testing.T) {
		uc, _ := newUseCaseWithMocks(t)

		logs, err := uc.ListOwn(ctx, entity.Actor{})

		assert.Nil(t, logs)
		assert.ErrorIs(t, err, errs.ErrNotAuthenticated)
	})

	t.Run("ListByFilter returns the filtered logs for admins", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		filter := entity.TimeLogFilter{}
		matching := []entity.TimeLog{{ID: 1}, {ID: 2}}

		m.timeLogRepo.EXPECT().FindByFilter(ctx, filter).Return(matching, nil).Once()

		logs, err := uc.ListByFilter(ctx, filter, admin)

		require.NoError(t, err)
		assert.Equal(t, matching, logs)
	})

	t.Run("ListByFilter rejects non-admin actors", func(t *testing.T) {
		uc, _ := newUseCaseWithMocks(t)

		logs, err := uc.ListByFilter(ctx, entity.TimeLogFilter{}, owner)

		assert.Nil(t, logs)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("Store failure propagates", func(t *testing.T) {
		uc, m := newUseCaseWithMocks(t)
		storeErr := errors.New("connection refused")

		m.timeLogRepo.EXPECT().FindByUser(ctx, owner.ID).Return(nil, storeErr).Once()

		logs, err := uc.ListOwn(ctx, owner)

		assert.Nil(t, logs)
		assert.ErrorIs(t, err, storeErr)
	})
}

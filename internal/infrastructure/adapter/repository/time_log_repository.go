package repository

import (
	"context"
	"errors"
	"time"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TimeLogRepository implements the TimeLogRepository port using GORM
type TimeLogRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTimeLogRepository creates a new TimeLogRepository instance
func NewTimeLogRepository(db *gorm.DB, logger coreport.Logger) *TimeLogRepository {
	return &TimeLogRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a time-log model to a domain entity, carrying
// joined display names when the relations were preloaded
func modelToEntity(m *model.TimeLog) entity.TimeLog {
	log := entity.TimeLog{
		ID:          m.ID,
		Date:        m.Date,
		Hours:       m.Hours,
		Description: m.Description,
		UserID:      m.UserID,
		ProjectID:   m.ProjectID,
		Locked:      m.Locked,
		LockedAt:    m.LockedAt,
		LockedByID:  m.LockedByID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	log.UserName = m.User.Name
	log.ProjectTitle = m.Project.Title
	if m.LockedBy != nil {
		log.LockedByName = m.LockedBy.Name
	}
	return log
}

// entityToModel converts a domain entity to its database model
func entityToModel(l *entity.TimeLog) model.TimeLog {
	return model.TimeLog{
		ID:          l.ID,
		Date:        l.Date,
		Hours:       l.Hours,
		Description: l.Description,
		UserID:      l.UserID,
		ProjectID:   l.ProjectID,
		Locked:      l.Locked,
		LockedAt:    l.LockedAt,
		LockedByID:  l.LockedByID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling for time logs
func (r *TimeLogRepository) handleDatabaseError(operation string, err error) error {
	r.logger.Error("Database error on time logs", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrLogNotFound
	}
	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrProjectNotFound
	}
	return errs.NewStoreError(operation, err)
}

// Create saves a new time log
func (r *TimeLogRepository) Create(ctx context.Context, log *entity.TimeLog) error {
	m := entityToModel(log)
	if result := r.db.WithContext(ctx).Create(&m); result.Error != nil {
		return r.handleDatabaseError("create time log", result.Error)
	}
	log.ID = m.ID
	return nil
}

// Update persists changes to the mutable fields of an existing time log.
// Lock state is never written here; only ConditionalBulkLock transitions
// it. The locked = false guard re-checks the lock under the write, so a
// lock landing between the caller's read and this update surfaces as
// ErrLogLocked instead of silently reverting the lock.
func (r *TimeLogRepository) Update(ctx context.Context, log *entity.TimeLog) error {
	m := entityToModel(log)
	result := r.db.WithContext(ctx).Model(&model.TimeLog{}).
		Where("id = ? AND locked = ?", m.ID, false).
		Updates(map[string]any{
			"date":        m.Date,
			"hours":       m.Hours,
			"description": m.Description,
			"updated_at":  m.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("update time log", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing log from one that got locked underneath us
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.TimeLog{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return r.handleDatabaseError("update time log", err)
		}
		if count > 0 {
			return errs.ErrLogLocked
		}
		return errs.ErrLogNotFound
	}
	return nil
}

// Delete removes a time log, guarded so a locked log is never deleted even
// if it was locked after the caller's ownership check
func (r *TimeLogRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND locked = ?", id, false).
		Delete(&model.TimeLog{})
	if result.Error != nil {
		return r.handleDatabaseError("delete time log", result.Error)
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing log from one that got locked underneath us
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.TimeLog{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return r.handleDatabaseError("delete time log", err)
		}
		if count > 0 {
			return errs.ErrLogLocked
		}
		return errs.ErrLogNotFound
	}
	return nil
}

// GetByID retrieves a single time log joined with display names
func (r *TimeLogRepository) GetByID(ctx context.Context, id uint64) (*entity.TimeLog, error) {
	var m model.TimeLog
	result := r.db.WithContext(ctx).
		Preload("User").Preload("Project").Preload("LockedBy").
		First(&m, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get time log", result.Error)
	}
	log := modelToEntity(&m)
	return &log, nil
}

// FindByIDs retrieves the logs whose ids appear in the given set. Missing
// ids are simply absent from the result.
func (r *TimeLogRepository) FindByIDs(ctx context.Context, ids []uint64) ([]entity.TimeLog, error) {
	var ms []model.TimeLog
	result := r.db.WithContext(ctx).
		Preload("User").Preload("Project").Preload("LockedBy").
		Where("id IN ?", ids).
		Order("date ASC, id ASC").
		Find(&ms)
	if result.Error != nil {
		return nil, r.handleDatabaseError("find time logs by ids", result.Error)
	}
	return modelsToEntities(ms), nil
}

// FindByFilter retrieves the logs matching the filter, ordered by date then
// id. The same constraints applied here are re-applied by
// ConditionalBulkLock at commit time.
func (r *TimeLogRepository) FindByFilter(ctx context.Context, filter entity.TimeLogFilter) ([]entity.TimeLog, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.TimeLog{}), filter).
		Preload("User").Preload("Project").Preload("LockedBy").
		Order("date ASC, id ASC")

	var ms []model.TimeLog
	if result := query.Find(&ms); result.Error != nil {
		return nil, r.handleDatabaseError("find time logs by filter", result.Error)
	}
	return modelsToEntities(ms), nil
}

// FindByUser retrieves all logs owned by a user, newest date first
func (r *TimeLogRepository) FindByUser(ctx context.Context, userID uint64) ([]entity.TimeLog, error) {
	var ms []model.TimeLog
	result := r.db.WithContext(ctx).
		Preload("User").Preload("Project").Preload("LockedBy").
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&ms)
	if result.Error != nil {
		return nil, r.handleDatabaseError("find time logs by user", result.Error)
	}
	return modelsToEntities(ms), nil
}

// ConditionalBulkLock applies the unlocked-to-locked transition as one
// conditional bulk update. The locked = false guard doubles as the
// optimistic concurrency check, and the filter constraints are re-applied
// so rows that drifted out of the caller's snapshot are excluded rather
// than locked blindly.
func (r *TimeLogRepository) ConditionalBulkLock(
	ctx context.Context,
	ids []uint64,
	filter entity.TimeLogFilter,
	actorID uint64,
	now time.Time,
) (int64, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.TimeLog{}), filter).
		Where("id IN ?", ids).
		Where("locked = ?", false)

	result := query.Updates(map[string]any{
		"locked":       true,
		"locked_at":    now,
		"locked_by_id": actorID,
		"updated_at":   now,
	})
	if result.Error != nil {
		r.logger.Error("Conditional bulk lock failed", map[string]any{
			"ids":      ids,
			"actor_id": actorID,
			"error":    result.Error.Error(),
		})
		return 0, errs.NewStoreError("conditional bulk lock", result.Error)
	}

	r.logger.Debug("Conditional bulk lock applied", map[string]any{
		"attempted": len(ids),
		"locked":    result.RowsAffected,
		"actor_id":  actorID,
	})
	return result.RowsAffected, nil
}

// applyFilter translates a TimeLogFilter into SQL constraints. Date bounds
// are normalized to day boundaries so the inclusive range semantics match
// the in-memory Matches evaluation.
func applyFilter(query *gorm.DB, filter entity.TimeLogFilter) *gorm.DB {
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", entity.StartOfDay(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", entity.EndOfDay(*filter.EndDate))
	}
	if filter.LockStatus != nil {
		query = query.Where("locked = ?", *filter.LockStatus == entity.LockStatusLocked)
	}
	return query
}

// modelsToEntities converts a slice of models to domain entities
func modelsToEntities(ms []model.TimeLog) []entity.TimeLog {
	logs := make([]entity.TimeLog, 0, len(ms))
	for i := range ms {
		logs = append(logs, modelToEntity(&ms[i]))
	}
	return logs
}

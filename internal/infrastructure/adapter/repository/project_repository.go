package repository

import (
	"context"
	"errors"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	errs "github.com/omid-sharifi/timetrack/internal/domain/error"
	coreport "github.com/omid-sharifi/timetrack/internal/domain/port/core"
	"github.com/omid-sharifi/timetrack/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ProjectRepository implements the ProjectRepository port using GORM
type ProjectRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewProjectRepository creates a new ProjectRepository instance
func NewProjectRepository(db *gorm.DB, logger coreport.Logger) *ProjectRepository {
	return &ProjectRepository{db: db, logger: logger}
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id uint64) (*entity.Project, error) {
	var m model.Project
	result := r.db.WithContext(ctx).First(&m, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		r.logger.Error("Database error when getting project", map[string]any{
			"project_id": id,
			"error":      result.Error.Error(),
		})
		return nil, errs.NewStoreError("get project", result.Error)
	}

	return &entity.Project{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      m.Status,
	}, nil
}

// IsUserAssigned reports whether the user is assigned to the project
func (r *ProjectRepository) IsUserAssigned(ctx context.Context, projectID, userID uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Table("project_users").
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count)
	if result.Error != nil {
		r.logger.Error("Database error when checking project assignment", map[string]any{
			"project_id": projectID,
			"user_id":    userID,
			"error":      result.Error.Error(),
		})
		return false, errs.NewStoreError("check project assignment", result.Error)
	}
	return count > 0, nil
}

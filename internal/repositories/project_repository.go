package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	model "github.com/okoye-peter/project-management-app/internal/models"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type CreateProjectInput struct {
	Name        string
	Description *string
	StartDate   *time.Time
	DueDate     *time.Time
}

func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	projects := []model.Project{}
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	project := &model.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		DueDate:     in.DueDate,
	}

	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project; the store cascades to its tasks and, through
// them, to comments, attachments and assignments.
func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrProjectNotFound
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/okoye-peter/project-management-app/internal/constants"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	model "github.com/okoye-peter/project-management-app/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTaskInput is the validated payload for task creation. The request
// field assignedUserId maps to the assignedToId column.
type CreateTaskInput struct {
	Title        string
	Description  string
	Status       *constants.TaskStatus
	Priority     *constants.TaskPriority
	AssignedToID *uint
	StartDate    *time.Time
	DueDate      *time.Time
}

// withRelations preloads everything a task response is enriched with.
func (r *TaskRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Project").
		Preload("AssignedTo").
		Preload("AssignedBy").
		Preload("Comments").
		Preload("Attachments")
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Task, error) {
	tasks := []model.Task{}
	err := r.withRelations(ctx).
		Where("project_id = ?", projectID).
		Order("created_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Create(ctx context.Context, projectID uint, in CreateTaskInput) (*model.Task, error) {
	task := &model.Task{
		Title:        in.Title,
		Description:  &in.Description,
		Status:       in.Status,
		Priority:     in.Priority,
		AssignedToID: in.AssignedToID,
		StartDate:    in.StartDate,
		DueDate:      in.DueDate,
		ProjectID:    projectID,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, task.ID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.withRelations(ctx).First(&task, "tasks.id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// UpdateStatus updates the status of the task identified by the exact
// (id, projectId) pair. A mismatched pair affects zero rows and reports
// not-found instead of silently succeeding. Last writer wins; there is no
// conflict detection between concurrent updates.
func (r *TaskRepository) UpdateStatus(ctx context.Context, projectID, taskID uint, status constants.TaskStatus) (*model.Task, error) {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Update("status", status)

	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	return r.FindByID(ctx, taskID)
}

package services

import (
	"context"

	"github.com/okoye-peter/project-management-app/internal/constants"
	model "github.com/okoye-peter/project-management-app/internal/models"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

// TaskService owns task state transitions and project-scoped queries.
// Status is a flat enumeration: any status may move to any other status.
// There is deliberately no transition graph (DONE back to TODO is legal).
type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// TaskView is a task enriched with read-only display labels. The labels
// are derived, never stored, and never fail to compute.
type TaskView struct {
	model.Task
	StatusText   *string `json:"status_text"`
	PriorityText *string `json:"priority_text"`
}

// Transform derives status_text and priority_text from the numeric enum
// values. Null status/priority yields null text; out-of-range values
// resolve to "UNKNOWN".
func Transform(task model.Task) TaskView {
	view := TaskView{Task: task}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	if view.Comments == nil {
		view.Comments = []model.Comment{}
	}
	if view.Attachments == nil {
		view.Attachments = []model.Attachment{}
	}
	if task.Status != nil {
		label := task.Status.Label()
		view.StatusText = &label
	}
	if task.Priority != nil {
		label := task.Priority.Label()
		view.PriorityText = &label
	}
	return view
}

// ListByProject returns every task in the project with its relations.
// An empty project is an empty slice, not an error.
func (s *TaskService) ListByProject(ctx context.Context, projectID uint) ([]TaskView, error) {
	tasks, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, Transform(task))
	}
	return views, nil
}

func (s *TaskService) Create(ctx context.Context, projectID uint, in repository.CreateTaskInput) (*TaskView, error) {
	task, err := s.repo.Create(ctx, projectID, in)
	if err != nil {
		return nil, err
	}

	view := Transform(*task)
	return &view, nil
}

func (s *TaskService) UpdateStatus(ctx context.Context, projectID, taskID uint, status constants.TaskStatus) (*TaskView, error) {
	task, err := s.repo.UpdateStatus(ctx, projectID, taskID, status)
	if err != nil {
		return nil, err
	}

	view := Transform(*task)
	return &view, nil
}

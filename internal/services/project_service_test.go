package services

import (
	"context"
	"testing"

	"github.com/okoye-peter/project-management-app/internal/constants"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

func TestProjectService_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(repository.NewProjectRepository(db))

	ctx := context.Background()
	description := "Redesign marketing site"
	project, err := service.Create(ctx, repository.CreateProjectInput{
		Name:        "Website Redesign",
		Description: &description,
	})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	if project.Name != "Website Redesign" {
		t.Errorf("expected name Website Redesign, got %s", project.Name)
	}

	fetched, err := service.Get(ctx, project.ID)
	if err != nil {
		t.Fatalf("failed to get project: %v", err)
	}
	if fetched.Description == nil || *fetched.Description != description {
		t.Error("expected description to round-trip")
	}
}

func TestProjectService_GetMissing(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(repository.NewProjectRepository(db))

	_, err := service.Get(context.Background(), 9999)
	if err != apperrors.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_List(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(repository.NewProjectRepository(db))

	ctx := context.Background()
	for _, name := range []string{"One", "Two", "Three"} {
		if _, err := service.Create(ctx, repository.CreateProjectInput{Name: name}); err != nil {
			t.Fatalf("failed to create project %s: %v", name, err)
		}
	}

	projects, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list projects: %v", err)
	}
	if len(projects) != 3 {
		t.Errorf("expected 3 projects, got %d", len(projects))
	}
}

func TestProjectService_DeleteCascadesTasks(t *testing.T) {
	db := setupTestDB(t)
	projects := NewProjectService(repository.NewProjectRepository(db))
	tasks := NewTaskService(repository.NewTaskRepository(db))

	ctx := context.Background()
	project, err := projects.Create(ctx, repository.CreateProjectInput{Name: "Doomed"})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	_, err = tasks.Create(ctx, project.ID, repository.CreateTaskInput{
		Title:       "Orphan candidate",
		Description: "Should vanish with the project",
		Status:      statusPtr(constants.StatusTodo),
	})
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := projects.Delete(ctx, project.ID); err != nil {
		t.Fatalf("failed to delete project: %v", err)
	}

	var count int64
	if err := db.Table("tasks").Where("project_id = ?", project.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count tasks: %v", err)
	}
	if count != 0 {
		t.Errorf("expected tasks to cascade, %d remain", count)
	}
}

func TestProjectService_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	service := NewProjectService(repository.NewProjectRepository(db))

	err := service.Delete(context.Background(), 424242)
	if err != apperrors.ErrProjectNotFound {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

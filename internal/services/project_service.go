package services

import (
	"context"

	model "github.com/okoye-peter/project-management-app/internal/models"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.repo.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProjectService) Create(ctx context.Context, in repository.CreateProjectInput) (*model.Project, error) {
	return s.repo.Create(ctx, in)
}

// Delete removes a project and, through the store's cascade rules, all of
// its tasks and their dependents.
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

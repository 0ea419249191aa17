package services

import (
	"context"

	model "github.com/okoye-peter/project-management-app/internal/models"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, in repository.CreateUserInput) (*model.User, error) {
	return s.repo.Create(ctx, in)
}

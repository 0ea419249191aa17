package services

import (
	"context"

	model "github.com/okoye-peter/project-management-app/internal/models"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

type TeamService struct {
	teams    *repository.TeamRepository
	users    *repository.UserRepository
	projects *repository.ProjectRepository
}

func NewTeamService(
	teams *repository.TeamRepository,
	users *repository.UserRepository,
	projects *repository.ProjectRepository,
) *TeamService {
	return &TeamService{
		teams:    teams,
		users:    users,
		projects: projects,
	}
}

type CreateTeamInput struct {
	Name             string
	ProductOwnerID   *uint
	ProjectManagerID *uint
	ProjectID        *uint
	UserIDs          []uint
}

// Create builds a team, resolving each optional reference and silently
// skipping ones that do not resolve (matching the original behavior:
// a missing owner id leaves the field unset rather than failing).
func (s *TeamService) Create(ctx context.Context, in CreateTeamInput) (*model.Team, error) {
	team := &model.Team{Name: in.Name}

	if in.ProductOwnerID != nil {
		if owner, err := s.users.FindByID(ctx, *in.ProductOwnerID); err == nil {
			team.ProductOwnerID = &owner.ID
		}
	}

	if in.ProjectManagerID != nil {
		if manager, err := s.users.FindByID(ctx, *in.ProjectManagerID); err == nil {
			team.ProjectManagerID = &manager.ID
		}
	}

	if in.ProjectID != nil {
		if project, err := s.projects.FindByID(ctx, *in.ProjectID); err == nil {
			team.ProjectID = &project.ID
		}
	}

	if len(in.UserIDs) > 0 {
		users, err := s.users.FindByIDs(ctx, in.UserIDs)
		if err != nil {
			return nil, err
		}
		team.Users = users
	}

	return s.teams.Create(ctx, team)
}

func (s *TeamService) List(ctx context.Context) ([]model.Team, error) {
	return s.teams.List(ctx)
}

package services

import (
	"context"
	"testing"

	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

func TestTeamService_CreateResolvesReferences(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	service := NewTeamService(repository.NewTeamRepository(db), userRepo, projectRepo)

	ctx := context.Background()
	owner, err := userRepo.Create(ctx, repository.CreateUserInput{CognitoID: "id-owner", Username: "owner"})
	if err != nil {
		t.Fatalf("failed to create owner: %v", err)
	}
	member, err := userRepo.Create(ctx, repository.CreateUserInput{CognitoID: "id-member", Username: "member"})
	if err != nil {
		t.Fatalf("failed to create member: %v", err)
	}
	project, err := projectRepo.Create(ctx, repository.CreateProjectInput{Name: "Teamed"})
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	team, err := service.Create(ctx, CreateTeamInput{
		Name:           "Core",
		ProductOwnerID: &owner.ID,
		ProjectID:      &project.ID,
		UserIDs:        []uint{owner.ID, member.ID},
	})
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}

	if team.ProductOwner == nil || team.ProductOwner.Username != "owner" {
		t.Error("expected product owner to resolve")
	}
	if team.Project == nil || team.Project.Name != "Teamed" {
		t.Error("expected project to resolve")
	}
	if len(team.Users) != 2 {
		t.Errorf("expected 2 members, got %d", len(team.Users))
	}
}

func TestTeamService_CreateSkipsMissingReferences(t *testing.T) {
	db := setupTestDB(t)
	service := NewTeamService(
		repository.NewTeamRepository(db),
		repository.NewUserRepository(db),
		repository.NewProjectRepository(db),
	)

	missing := uint(9999)
	team, err := service.Create(context.Background(), CreateTeamInput{
		Name:           "Loose",
		ProductOwnerID: &missing,
	})
	if err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	if team.ProductOwnerID != nil {
		t.Error("expected missing product owner to be skipped, not set")
	}
}

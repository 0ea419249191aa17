package repository

import (
	"context"

	"gorm.io/gorm"

	model "github.com/okoye-peter/project-management-app/internal/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, team *model.Team) (*model.Team, error) {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, team.ID)
}

func (r *TeamRepository) FindByID(ctx context.Context, id uint) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("ProductOwner").
		Preload("ProjectManager").
		Preload("Project").
		Preload("Users").
		First(&team, "teams.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]model.Team, error) {
	teams := []model.Team{}
	err := r.db.WithContext(ctx).
		Preload("ProductOwner").
		Preload("ProjectManager").
		Preload("Project").
		Preload("Users").
		Order("created_at asc").
		Find(&teams).Error
	return teams, err
}

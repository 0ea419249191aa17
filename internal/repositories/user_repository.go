package repository

import (
	"context"

	"gorm.io/gorm"

	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	model "github.com/okoye-peter/project-management-app/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type CreateUserInput struct {
	CognitoID      string
	Username       string
	ProfilePicture *string
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.db.WithContext(ctx).Order("username asc").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*model.User, error) {
	users := []*model.User{}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	user := &model.User{
		CognitoID:      in.CognitoID,
		Username:       in.Username,
		ProfilePicture: in.ProfilePicture,
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

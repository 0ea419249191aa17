package validators

import (
	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

func ValidateCreateUserRequest(r *dto.CreateUserRequest) (*repository.CreateUserInput, error) {
	fields := FieldErrors{}

	if r.CognitoID == "" {
		fields.Add("cognitoId", "cognitoId is required")
	}
	if r.Username == "" {
		fields.Add("username", "username is required")
	}

	if !fields.Empty() {
		return nil, apperrors.NewValidationException("Invalid user data", fields)
	}

	return &repository.CreateUserInput{
		CognitoID:      r.CognitoID,
		Username:       r.Username,
		ProfilePicture: r.ProfilePicture,
	}, nil
}

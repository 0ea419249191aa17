package validators

import (
	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/services"
)

func ValidateCreateTeamRequest(r *dto.CreateTeamRequest) (*services.CreateTeamInput, error) {
	fields := FieldErrors{}

	if r.Name == "" {
		fields.Add("name", "Name is required")
	}

	if !fields.Empty() {
		return nil, apperrors.NewValidationException("Invalid team data", fields)
	}

	return &services.CreateTeamInput{
		Name:             r.Name,
		ProductOwnerID:   r.ProductOwnerID,
		ProjectManagerID: r.ProjectManagerID,
		ProjectID:        r.ProjectID,
		UserIDs:          r.UserIDs,
	}, nil
}

package validators

import (
	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

// ValidateCreateProjectRequest validates a project payload. Unlike task
// creation, no startDate/dueDate ordering rule applies here.
func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) (*repository.CreateProjectInput, error) {
	fields := FieldErrors{}

	if r.Name == "" {
		fields.Add("name", "Name is required")
	}

	in := &repository.CreateProjectInput{
		Name:        r.Name,
		Description: r.Description,
	}

	startDate, err := coerceDate(r.StartDate)
	if err != nil {
		fields.Add("startDate", "startDate must be a valid date")
	} else {
		in.StartDate = startDate
	}

	dueDate, err := coerceDate(r.DueDate)
	if err != nil {
		fields.Add("dueDate", "dueDate must be a valid date")
	} else {
		in.DueDate = dueDate
	}

	if !fields.Empty() {
		return nil, apperrors.NewValidationException("Validation failed", fields)
	}

	return in, nil
}

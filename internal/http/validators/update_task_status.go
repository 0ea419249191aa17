package validators

import (
	"github.com/okoye-peter/project-management-app/internal/constants"
	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
)

// ValidateUpdateTaskStatusRequest requires an explicit status within the
// enumeration; there is no default.
func ValidateUpdateTaskStatusRequest(r *dto.UpdateTaskStatusRequest) (constants.TaskStatus, error) {
	fields := FieldErrors{}

	if r.Status == nil {
		fields.Add("status", "status is required")
		return 0, apperrors.NewValidationException("Invalid task status", fields)
	}

	status := constants.TaskStatus(*r.Status)
	if !status.Valid() {
		fields.Add("status", "status must be a valid task status")
		return 0, apperrors.NewValidationException("Invalid task status", fields)
	}

	return status, nil
}

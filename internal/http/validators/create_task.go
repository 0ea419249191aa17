package validators

import (
	"fmt"
	"unicode/utf8"

	"github.com/okoye-peter/project-management-app/internal/constants"
	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	repository "github.com/okoye-peter/project-management-app/internal/repositories"
)

const (
	titleMin       = 3
	titleMax       = 100
	descriptionMin = 3
	descriptionMax = 1000
)

// ValidateCreateTaskRequest checks the whole payload and returns either a
// fully coerced input or a ValidationException carrying every field
// violation found.
func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) (*repository.CreateTaskInput, error) {
	fields := FieldErrors{}

	// Bounds count characters, not bytes: multibyte titles must not be
	// penalized for their encoding.
	if l := utf8.RuneCountInString(r.Title); l < titleMin || l > titleMax {
		fields.Add("title", fmt.Sprintf("title must be between %d and %d characters", titleMin, titleMax))
	}
	if l := utf8.RuneCountInString(r.Description); l < descriptionMin || l > descriptionMax {
		fields.Add("description", fmt.Sprintf("description must be between %d and %d characters", descriptionMin, descriptionMax))
	}

	in := &repository.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
	}

	if r.Status != nil {
		status := constants.TaskStatus(*r.Status)
		if !status.Valid() {
			fields.Add("status", "status must be a valid task status")
		} else {
			in.Status = &status
		}
	}

	if r.Priority != nil {
		priority := constants.TaskPriority(*r.Priority)
		if !priority.Valid() {
			fields.Add("priority", "priority must be a valid task priority")
		} else {
			in.Priority = &priority
		}
	}

	assignedTo, err := coerceID(r.AssignedUserID)
	if err != nil {
		fields.Add("assignedUserId", "assignedUserId must be a positive integer")
	} else {
		in.AssignedToID = assignedTo
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

	if in.StartDate != nil && in.DueDate != nil && in.DueDate.Before(*in.StartDate) {
		fields.Add("dueDate", "dueDate must be after startDate")
	}

	if !fields.Empty() {
		return nil, apperrors.NewValidationException("Invalid task data", fields)
	}

	return in, nil
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/http/validators"
)

func (h *Handler) ListTasks(c echo.Context) error {
	projectID, err := paramID(c, "projectId", apperrors.ErrInvalidProjectID)
	if err != nil {
		h.logger.Info("Invalid project ID", nil)
		return err
	}

	tasks, err := h.tasks.ListByProject(c.Request().Context(), projectID)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Tasks retrieved successfully", tasks)
}

func (h *Handler) CreateTask(c echo.Context) error {
	projectID, err := paramID(c, "projectId", apperrors.ErrInvalidProjectID)
	if err != nil {
		h.logger.Info("Invalid project ID", nil)
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	in, err := validators.ValidateCreateTaskRequest(&req)
	if err != nil {
		h.logger.Info("Invalid task data", nil)
		return err
	}

	task, err := h.tasks.Create(c.Request().Context(), projectID, *in)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Task created successfully", echo.Map{"task": task})
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	projectID, err := paramID(c, "projectId", apperrors.ErrInvalidProjectID)
	if err != nil {
		return err
	}

	taskID, err := paramID(c, "taskId", apperrors.ErrInvalidTaskID)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	status, err := validators.ValidateUpdateTaskStatusRequest(&req)
	if err != nil {
		return err
	}

	task, err := h.tasks.UpdateStatus(c.Request().Context(), projectID, taskID, status)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Task updated successfully", echo.Map{"task": task})
}

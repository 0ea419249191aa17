package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/http/validators"
)

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Projects retrieved successfully", projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	id, err := paramID(c, "projectId", apperrors.ErrInvalidProjectID)
	if err != nil {
		return err
	}

	project, err := h.projects.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Project retrieved successfully", project)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	in, err := validators.ValidateCreateProjectRequest(&req)
	if err != nil {
		return err
	}

	project, err := h.projects.Create(c.Request().Context(), *in)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Project created successfully", echo.Map{"project": project})
}

func (h *Handler) DeleteProject(c echo.Context) error {
	id, err := paramID(c, "projectId", apperrors.ErrInvalidProjectID)
	if err != nil {
		return err
	}

	if err := h.projects.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return success(c, http.StatusOK, "Project deleted successfully", nil)
}

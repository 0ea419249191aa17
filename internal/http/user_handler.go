package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/http/validators"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Users retrieved successfully", users)
}

func (h *Handler) GetUser(c echo.Context) error {
	id, err := paramID(c, "userId", apperrors.ErrInvalidUserID)
	if err != nil {
		return err
	}

	user, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "User retrieved successfully", user)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	in, err := validators.ValidateCreateUserRequest(&req)
	if err != nil {
		return err
	}

	user, err := h.users.Create(c.Request().Context(), *in)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "User created successfully", echo.Map{"user": user})
}

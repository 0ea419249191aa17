package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/okoye-peter/project-management-app/internal/data_models"
	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/http/validators"
)

func (h *Handler) ListTeams(c echo.Context) error {
	teams, err := h.teams.List(c.Request().Context())
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Teams retrieved successfully", teams)
}

func (h *Handler) CreateTeam(c echo.Context) error {
	var req dto.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}

	in, err := validators.ValidateCreateTeamRequest(&req)
	if err != nil {
		return err
	}

	team, err := h.teams.Create(c.Request().Context(), *in)
	if err != nil {
		return err
	}

	return success(c, http.StatusCreated, "Team created successfully", echo.Map{"team": team})
}

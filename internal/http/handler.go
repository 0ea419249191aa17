package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/okoye-peter/project-management-app/internal/errors"
	"github.com/okoye-peter/project-management-app/internal/logging"
	"github.com/okoye-peter/project-management-app/internal/services"
)

type Handler struct {
	tasks    *services.TaskService
	projects *services.ProjectService
	teams    *services.TeamService
	users    *services.UserService
	logger   *logging.Logger
}

func NewHandler(
	tasks *services.TaskService,
	projects *services.ProjectService,
	teams *services.TeamService,
	users *services.UserService,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		tasks:    tasks,
		projects: projects,
		teams:    teams,
		users:    users,
		logger:   logger,
	}
}

// paramID parses a path parameter as a positive integer id, returning the
// given exception when it is not one.
func paramID(c echo.Context, name string, invalid *apperrors.Exception) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, invalid
	}
	return uint(id), nil
}

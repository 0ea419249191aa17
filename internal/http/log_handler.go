package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetLogs(c echo.Context) error {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = 50
	}
	level := c.QueryParam("level")

	result, err := h.logger.ReadPage(page, limit, level)
	if err != nil {
		return err
	}

	return success(c, http.StatusOK, "Logs retrieved successfully", result)
}

func (h *Handler) ClearLogs(c echo.Context) error {
	if err := h.logger.Clear(); err != nil {
		return err
	}

	return success(c, http.StatusOK, "Logs cleared successfully", nil)
}

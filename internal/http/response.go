package http

import "github.com/labstack/echo/v4"

// Response is the uniform envelope wrapped around every API response.
type Response struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

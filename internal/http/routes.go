package http

import "github.com/labstack/echo/v4"

func Register(e *echo.Echo, h *Handler) {
	e.GET("/projects", h.ListProjects)
	e.POST("/projects", h.CreateProject)
	e.GET("/projects/:projectId", h.GetProject)
	e.DELETE("/projects/:projectId", h.DeleteProject)

	e.GET("/projects/:projectId/tasks", h.ListTasks)
	e.POST("/projects/:projectId/tasks", h.CreateTask)
	e.PATCH("/projects/:projectId/tasks/:taskId/status", h.UpdateTaskStatus)

	e.GET("/teams", h.ListTeams)
	e.POST("/teams", h.CreateTeam)

	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.GET("/users/:userId", h.GetUser)

	e.GET("/logs", h.GetLogs)
	e.DELETE("/logs", h.ClearLogs)
}

package dto

// CreateTaskRequest is the raw create-task payload before validation.
// assignedUserId, startDate and dueDate are loosely typed because clients
// send numbers, date strings or empty strings interchangeably; the
// validator normalizes "" to null and coerces the rest.
type CreateTaskRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Status         *int   `json:"status"`
	Priority       *int   `json:"priority"`
	AssignedUserID any    `json:"assignedUserId"`
	StartDate      any    `json:"startDate"`
	DueDate        any    `json:"dueDate"`
}

type UpdateTaskStatusRequest struct {
	Status *int `json:"status"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StartDate   any     `json:"startDate"`
	DueDate     any     `json:"dueDate"`
}

type CreateTeamRequest struct {
	Name             string `json:"name"`
	ProductOwnerID   *uint  `json:"productOwnerId"`
	ProjectManagerID *uint  `json:"projectManagerId"`
	ProjectID        *uint  `json:"projectId"`
	UserIDs          []uint `json:"userIds"`
}

type CreateUserRequest struct {
	CognitoID      string  `json:"cognitoId"`
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profilePicture"`
}

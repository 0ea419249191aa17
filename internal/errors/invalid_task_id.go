package errors

import "net/http"

var ErrInvalidTaskID = &Exception{
	Message:    "Invalid task ID",
	StatusCode: http.StatusBadRequest,
}

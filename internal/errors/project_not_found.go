package errors

import "net/http"

var ErrProjectNotFound = &Exception{
	Message:    "Project not found",
	StatusCode: http.StatusNotFound,
}

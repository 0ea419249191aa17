package errors

import "net/http"

var ErrInvalidProjectID = &Exception{
	Message:    "Invalid project ID",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrInvalidUserID = &Exception{
	Message:    "Invalid user ID",
	StatusCode: http.StatusBadRequest,
}

package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "Invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

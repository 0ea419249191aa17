package errors

import "net/http"

// ValidationException carries the full set of field-level violations so a
// caller can render every problem at once. It is a distinct kind from
// NotFound and invalid-identifier errors.
type ValidationException struct {
	Exception
	Fields map[string][]string
}

func (e *ValidationException) Unwrap() error {
	return &e.Exception
}

func NewValidationException(message string, fields map[string][]string) *ValidationException {
	return &ValidationException{
		Exception: Exception{
			Message:    message,
			StatusCode: http.StatusBadRequest,
		},
		Fields: fields,
	}
}

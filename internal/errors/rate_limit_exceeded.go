package errors

import "net/http"

var ErrRateLimitExceeded = &Exception{
	Message:    "rate limit exceeded",
	StatusCode: http.StatusTooManyRequests,
}

package errs

import (
	"net/http"
)

// Messages the API uses verbatim.
const (
	MessageInternalServerError = "Internal server error"
	MessageMethodNotAllowed    = "Method not allowed"
	MessageRouteNotFound       = "Route not found"
	MessageValidationFailed    = "Validation failed"
)

func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError with itemized errors.
func NewBadRequestError(message string, errors []string) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message)
	err.Errors = errors
	return err
}

// NewValidationError creates the 400 response for a failed validator.
func NewValidationError(errors []string) *HTTPError {
	return NewBadRequestError(MessageValidationFailed, errors)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message)
}

// NewMethodNotAllowedError creates the 405 response for an unrouted method.
func NewMethodNotAllowedError() *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, MessageMethodNotAllowed)
}

// NewBackendError creates a 500 carrying the backend's own message, used
// when a list or create operation fails.
func NewBackendError(message string) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewInternalServerError creates the generic 500 for unexpected failures.
// The real cause is logged, never sent.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, MessageInternalServerError)
}

// NewTooManyRequestsError creates the 429 returned by the rate limiter.
func NewTooManyRequestsError() *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, "Too many requests")
}

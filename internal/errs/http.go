// Package errs defines the error types returned to API clients.
//
// Every failure leaves the API in one of two JSON shapes:
//
//	{ "error": "Room not found" }
//	{ "errors": ["Code is required", "Status must be one of: lobby, playing, finished"] }
//
// Handlers return *HTTPError values and the global error handler writes them.
package errs

import (
	"encoding/json"
	"strings"
)

// HTTPError is the main custom error type for API responses.
//
// Code and Status never reach the client body; Code is a machine-friendly
// label (e.g. "NOT_FOUND") used in logs and Status is the HTTP status.
type HTTPError struct {
	Code    string
	Message string
	Status  int

	// Errors holds itemized validation messages. When set, the body carries
	// only the list.
	Errors []string
}

// Error makes *HTTPError satisfy the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError, regardless of its fields.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MarshalJSON writes the client-facing body.
func (e *HTTPError) MarshalJSON() ([]byte, error) {
	if len(e.Errors) > 0 {
		return json.Marshal(struct {
			Errors []string `json:"errors"`
		}{Errors: e.Errors})
	}

	return json.Marshal(struct {
		Error string `json:"error"`
	}{Error: e.Message})
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}

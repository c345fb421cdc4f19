package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		err  *HTTPError
		want string
	}{
		{
			name: "single message",
			err:  NewNotFoundError("Room not found"),
			want: `{"error":"Room not found"}`,
		},
		{
			name: "validation list",
			err:  NewValidationError([]string{"Room ID is required", "Label is required"}),
			want: `{"errors":["Room ID is required","Label is required"]}`,
		},
		{
			name: "generic internal error",
			err:  NewInternalServerError(),
			want: `{"error":"Internal server error"}`,
		},
		{
			name: "method not allowed",
			err:  NewMethodNotAllowedError(),
			want: `{"error":"Method not allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.err)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestConstructors_Status(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewValidationError([]string{"x"}).Status)
	assert.Equal(t, "BAD_REQUEST", NewValidationError([]string{"x"}).Code)
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").Status)
	assert.Equal(t, http.StatusMethodNotAllowed, NewMethodNotAllowedError().Status)
	assert.Equal(t, http.StatusInternalServerError, NewBackendError("boom").Status)
	assert.Equal(t, "boom", NewBackendError("boom").Message)
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("Choice not found"))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Choice not found", httpErr.Message)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

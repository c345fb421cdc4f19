package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/choice-battle/backend/internal/config"
	"github.com/choice-battle/backend/internal/errs"
	"github.com/choice-battle/backend/internal/repository"
	"github.com/choice-battle/backend/internal/server"
	"github.com/choice-battle/backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *server.Server {
	log := zerolog.Nop()
	return &server.Server{Config: config.Default(), Logger: &log}
}

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestFailure_ToHTTPError(t *testing.T) {
	backend := &repository.Error{Kind: repository.KindBackend, Message: "permission denied for table rooms"}
	missing := repository.NewNotFoundError("Room not found")

	tests := []struct {
		name    string
		failure Failure
		err     error
		status  int
		message string
	}{
		{"not found keeps message", NotFound, missing, http.StatusNotFound, "Room not found"},
		{"backend error on keyed operation", NotFound, backend, http.StatusNotFound, "permission denied for table rooms"},
		{"backend error on list", Backend, backend, http.StatusInternalServerError, "permission denied for table rooms"},
		{"wrapped repository error", Backend, errors.Wrap(backend, "create"), http.StatusInternalServerError, "permission denied for table rooms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, tt.failure.toHTTPError(tt.err), &httpErr)
			assert.Equal(t, tt.status, httpErr.Status)
			assert.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestFailure_PassesOtherErrorsThrough(t *testing.T) {
	err := errors.New("boom")
	assert.Same(t, err, Backend.toHTTPError(err))
}

func TestHandleList_NilIsEmptyArray(t *testing.T) {
	c, rec := newContext(http.MethodGet, "")

	err := HandleList(c, func(context.Context) ([]string, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandleWithBody_ValidationStopsTheCall(t *testing.T) {
	c, _ := newContext(http.MethodPost, `{}`)

	called := false
	err := HandleWithBody(c, validation.ValidateCreateChoice, func(context.Context, validation.Record) (string, error) {
		called = true
		return "", nil
	}, http.StatusCreated, Backend)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, []string{"Room ID is required", "Label is required"}, httpErr.Errors)
	assert.False(t, called)
}

func TestHandleWithBody_PassesValidatedRecord(t *testing.T) {
	c, rec := newContext(http.MethodPost, `{"room_id":"r1","label":"Pizza","extra":1}`)

	err := HandleWithBody(c, validation.ValidateCreateChoice, func(_ context.Context, data validation.Record) (validation.Record, error) {
		return data, nil
	}, http.StatusCreated, Backend)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"room_id":"r1","label":"Pizza","extra":1}`, rec.Body.String())
}

func TestHandleNoContent(t *testing.T) {
	c, rec := newContext(http.MethodDelete, "")

	err := HandleNoContent(c, func(context.Context) error { return nil }, http.StatusNoContent, NotFound)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())

	c, _ = newContext(http.MethodDelete, "")
	err = HandleNoContent(c, func(context.Context) error {
		return repository.NewNotFoundError("Invite not found")
	}, http.StatusNoContent, NotFound)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestCheckHealth_WithoutDependencies(t *testing.T) {
	h := NewHealthHandler(newTestServer())
	c, rec := newContext(http.MethodGet, "")

	require.NoError(t, h.CheckHealth(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "development", body.Environment)
	assert.Empty(t, body.Checks)
}

func TestHealthCheck_ReportsPingFailure(t *testing.T) {
	h := NewHealthHandler(newTestServer())
	log := zerolog.Nop()

	result := h.check(context.Background(), &log, "redis", config.DefaultObservabilityConfig().HealthChecks.Timeout,
		func(context.Context) error { return errors.New("dial tcp: connection refused") })

	assert.Equal(t, "unhealthy", result.Status)
	assert.Equal(t, "dial tcp: connection refused", result.Error)
}

func TestOpenAPI(t *testing.T) {
	h := NewOpenAPIHandler(newTestServer())

	c, rec := newContext(http.MethodGet, "")
	require.NoError(t, h.ServeOpenAPISpec(c))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.True(t, json.Valid(rec.Body.Bytes()))

	c, rec = newContext(http.MethodGet, "")
	require.NoError(t, h.ServeOpenAPIUI(c))
	assert.Contains(t, rec.Body.String(), "/api-docs.json")
}

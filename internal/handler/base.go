// Package handler is the first layer after the router.
//
// It binds and validates request bodies, calls the services, and maps
// each outcome to a status code and body. Every handler runs through
// the same pipeline so logging and tracing look alike for all routes.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/choice-battle/backend/internal/errs"
	"github.com/choice-battle/backend/internal/middleware"
	"github.com/choice-battle/backend/internal/repository"
	"github.com/choice-battle/backend/internal/server"
	"github.com/choice-battle/backend/internal/sqlerr"
	"github.com/choice-battle/backend/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
)

// Handler holds the shared application dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Failure selects the status returned when the service call fails.
type Failure int

const (
	// NotFound is used by operations keyed on one record: get, update,
	// delete, vote and use.
	NotFound Failure = iota
	// Backend is used by list and create operations.
	Backend
)

func (f Failure) String() string {
	if f == Backend {
		return "backend"
	}
	return "not_found"
}

// toHTTPError maps a repository failure. Any other error is returned
// as is and ends up as a generic 500.
func (f Failure) toHTTPError(err error) error {
	var repoErr *repository.Error
	if !errors.As(err, &repoErr) {
		return err
	}

	if f == Backend {
		return errs.NewBackendError(repoErr.Message)
	}
	return errs.NewNotFoundError(repoErr.Message)
}

// ResponseHandler writes a successful result.
type ResponseHandler interface {
	Handle(c echo.Context, result any) error

	// GetOperation names the handler type in logs.
	GetOperation() string

	AddAttributes(txn *newrelic.Transaction, result any)
}

type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result any) {
	if txn == nil || result == nil {
		return
	}
	if n, ok := result.(interface{ Len() int }); ok {
		txn.AddAttribute("response.items", n.Len())
	}
}

type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, _ any) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(*newrelic.Transaction, any) {}

// list lets the JSON handler report how many items a list returned.
type list[T any] []T

func (l list[T]) Len() int { return len(l) }

// handleRequest is the pipeline shared by every handler:
//
//   - bind and validate the body when validate is set
//   - run the service call with the request context
//   - map a failure through onFailure
//   - log, time and trace each phase
//   - write the response
func handleRequest(
	c echo.Context,
	validate validation.Func,
	run func(ctx context.Context, data validation.Record) (any, error),
	responseHandler ResponseHandler,
	onFailure Failure,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		txn.AddAttribute("handler.failure_mode", onFailure.String())
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	var data validation.Record
	var validationDuration time.Duration

	if validate != nil {
		validationStart := time.Now()

		var err error
		data, err = bindAndValidate(c, validate)
		validationDuration = time.Since(validationStart)

		if err != nil {
			logger.Warn().
				Err(err).
				Dur("validation_duration", validationDuration).
				Msg("request validation failed")

			if txn != nil {
				txn.AddAttribute("validation.status", "failed")
				txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
			}
			return err
		}

		if txn != nil {
			txn.AddAttribute("validation.status", "success")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}
	}

	handlerStart := time.Now()
	result, err := run(c.Request().Context(), data)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		dbCode := sqlerr.ErrCode(err)

		logger.Error().
			Err(err).
			Str("db_error_code", string(dbCode)).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("db.error_code", string(dbCode))
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return onFailure.toHTTPError(err)
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

func bindAndValidate(c echo.Context, validate validation.Func) (validation.Record, error) {
	input, err := validation.BindBody(c)
	if err != nil {
		return nil, err
	}

	res := validate(input)
	if !res.Valid {
		return nil, errs.NewValidationError(res.Errors)
	}
	return res.Data, nil
}

// Handle runs a body-less operation returning one record.
func Handle[Res any](c echo.Context, run func(ctx context.Context) (Res, error), status int, onFailure Failure) error {
	return handleRequest(c, nil, func(ctx context.Context, _ validation.Record) (any, error) {
		return run(ctx)
	}, JSONResponseHandler{status: status}, onFailure)
}

// HandleList runs a list operation. A successful result is always a JSON
// array.
func HandleList[T any](c echo.Context, run func(ctx context.Context) ([]T, error)) error {
	return handleRequest(c, nil, func(ctx context.Context, _ validation.Record) (any, error) {
		items, err := run(ctx)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []T{}
		}
		return list[T](items), nil
	}, JSONResponseHandler{status: http.StatusOK}, Backend)
}

// HandleWithBody validates the body and passes the validated record on.
func HandleWithBody[Res any](
	c echo.Context,
	validate validation.Func,
	run func(ctx context.Context, data validation.Record) (Res, error),
	status int,
	onFailure Failure,
) error {
	return handleRequest(c, validate, func(ctx context.Context, data validation.Record) (any, error) {
		return run(ctx, data)
	}, JSONResponseHandler{status: status}, onFailure)
}

// HandleNoContent runs an operation with no response body.
func HandleNoContent(c echo.Context, run func(ctx context.Context) error, status int, onFailure Failure) error {
	return handleRequest(c, nil, func(ctx context.Context, _ validation.Record) (any, error) {
		return nil, run(ctx)
	}, NoContentResponseHandler{status: status}, onFailure)
}

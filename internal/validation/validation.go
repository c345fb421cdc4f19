// Package validation checks request bodies before they reach the services.
//
// Bodies are decoded into a Record (the JSON object as a map) rather than
// a struct: unknown fields pass through to the backend untouched, and a
// field that is present with a wrong type must be told apart from one
// that is absent. Individual field rules are go-playground/validator tags
// applied with Var.
package validation

import (
	"bytes"
	"encoding/json"
	"io"
	"math"

	"github.com/choice-battle/backend/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Record is a decoded JSON object, column name to value.
type Record = map[string]any

// Result is the outcome of a validator. Errors accumulate in rule order;
// Data is a shallow copy of the input and is nil when Valid is false.
type Result struct {
	Valid  bool
	Data   Record
	Errors []string
}

// Func validates a decoded body.
type Func func(input Record) Result

const MessageBodyNotObject = "Request body must be a JSON object"

var validate = validator.New()

// BindBody decodes the request body into a Record. An empty body is an
// empty object. Numbers become int64 when integral, float64 otherwise.
func BindBody(c echo.Context) (Record, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return Record{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, errs.NewValidationError([]string{MessageBodyNotObject})
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, errs.NewValidationError([]string{MessageBodyNotObject})
	}

	record := make(Record, len(obj))
	for k, v := range obj {
		record[k] = normalizeNumber(v)
	}
	return record, nil
}

func normalizeNumber(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

func result(input Record, errors []string) Result {
	if len(errors) > 0 {
		return Result{Valid: false, Errors: errors}
	}

	data := make(Record, len(input))
	for k, v := range input {
		data[k] = v
	}
	return Result{Valid: true, Data: data, Errors: []string{}}
}

// isMissing reports whether a required field counts as absent: not set,
// null, "", false or zero.
func isMissing(input Record, field string) bool {
	v, ok := input[field]
	if !ok || v == nil {
		return true
	}

	switch val := v.(type) {
	case string:
		return val == ""
	case bool:
		return !val
	case int64:
		return val == 0
	case float64:
		return val == 0 || math.IsNaN(val)
	}
	return false
}

// present reports whether field was sent at all, including as null.
func present(input Record, field string) bool {
	_, ok := input[field]
	return ok
}

// stringField returns the value as a string when it is one.
func stringField(input Record, field string) (string, bool) {
	s, ok := input[field].(string)
	return s, ok
}

// numberField returns the value as a number when it is one.
func numberField(input Record, field string) (any, bool) {
	switch n := input[field].(type) {
	case int64, float64:
		return n, true
	}
	return nil, false
}

func satisfies(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

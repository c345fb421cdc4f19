// Package repository handles all interactions with the database.
//
// Each repository owns one table and speaks plain SQL through pgx.
// Failures come back as *Error so callers can tell a missing row from a
// backend failure without inspecting driver errors.
package repository

import (
	"context"
	"fmt"

	"github.com/choice-battle/backend/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Kind int

const (
	KindBackend Kind = iota
	KindNotFound
)

func (k Kind) String() string {
	if k == KindNotFound {
		return "not_found"
	}
	return "backend"
}

// Error is a failed repository call. Message is what the API returns to
// the client.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewNotFoundError builds the error a repository returns when no row matched.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// wrapError turns a driver error into an *Error. The backend's own
// message is kept verbatim.
func wrapError(err error, notFound string) error {
	if err == nil {
		return nil
	}

	if sqlerr.IsNoRows(err) {
		return &Error{Kind: KindNotFound, Message: notFound, Err: err}
	}

	if msg := sqlerr.Message(err); msg != "" {
		return &Error{Kind: KindBackend, Message: msg, Err: sqlerr.Convert(err)}
	}

	return &Error{Kind: KindBackend, Message: err.Error(), Err: fmt.Errorf("query failed: %w", err)}
}

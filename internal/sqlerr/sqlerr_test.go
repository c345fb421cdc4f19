package sqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, ForeignKeyViolation, MapCode("23503"))
	assert.Equal(t, NotNullViolation, MapCode("23502"))
	assert.Equal(t, CheckViolation, MapCode("23514"))
	assert.Equal(t, InvalidText, MapCode("22P02"))
	assert.Equal(t, Other, MapCode("XX000"))
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("ERROR"))
	assert.Equal(t, SeverityError, MapSeverity("whatever"))
}

func TestConvert(t *testing.T) {
	pgErr := &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        `duplicate key value violates unique constraint "rooms_code_key"`,
		TableName:      "rooms",
		ConstraintName: "rooms_code_key",
	}
	wrapped := fmt.Errorf("insert rooms: %w", pgErr)

	sqlErr := Convert(wrapped)
	require.NotNil(t, sqlErr)
	assert.Equal(t, UniqueViolation, sqlErr.Code)
	assert.Equal(t, "rooms", sqlErr.TableName)
	assert.True(t, errors.Is(sqlErr, pgErr))

	assert.Equal(t, UniqueViolation, ErrCode(wrapped))
	assert.Equal(t, pgErr.Message, Message(wrapped))
}

func TestConvert_NonDatabaseError(t *testing.T) {
	err := errors.New("dial tcp: connection refused")

	assert.Nil(t, Convert(err))
	assert.Equal(t, Other, ErrCode(err))
	assert.Empty(t, Message(err))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(fmt.Errorf("find: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("nope")))
}

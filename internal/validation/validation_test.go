package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/choice-battle/backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindBody(t *testing.T) {
	record, err := BindBody(newContext(`{"label":"Pizza","hits":2,"ratio":0.5,"extra":true}`))
	require.NoError(t, err)

	assert.Equal(t, "Pizza", record["label"])
	assert.Equal(t, int64(2), record["hits"])
	assert.Equal(t, 0.5, record["ratio"])
	assert.Equal(t, true, record["extra"])
}

func TestBindBody_EmptyBody(t *testing.T) {
	record, err := BindBody(newContext(""))
	require.NoError(t, err)
	assert.Empty(t, record)
}

func TestBindBody_NotAnObject(t *testing.T) {
	for _, body := range []string{`[1,2]`, `"text"`, `{broken`, `null`} {
		t.Run(body, func(t *testing.T) {
			_, err := BindBody(newContext(body))

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, []string{MessageBodyNotObject}, httpErr.Errors)
		})
	}
}

func TestResult_DataIsCopy(t *testing.T) {
	input := Record{"username": "ana", "nickname": "A"}
	res := ValidateCreateUser(input)

	require.True(t, res.Valid)
	assert.Equal(t, input, res.Data)
	assert.Empty(t, res.Errors)

	res.Data["username"] = "changed"
	assert.Equal(t, "ana", input["username"])
}

func TestValidateCreateUser(t *testing.T) {
	tests := []struct {
		name  string
		input Record
		want  []string
	}{
		{"valid", Record{"username": "ab"}, nil},
		{"missing", Record{}, []string{"Username is required"}},
		{"empty", Record{"username": ""}, []string{"Username is required"}},
		{"not a string", Record{"username": int64(12)}, []string{"Username is required"}},
		{"too short", Record{"username": "a"}, []string{"Username must have at least 2 characters"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateCreateUser(tt.input)
			assert.Equal(t, len(tt.want) == 0, res.Valid)
			if len(tt.want) > 0 {
				assert.Equal(t, tt.want, res.Errors)
				assert.Nil(t, res.Data)
			}
		})
	}
}

func TestValidateUpdateUser(t *testing.T) {
	assert.True(t, ValidateUpdateUser(Record{}).Valid)
	assert.Equal(t, []string{"Username must be a string"}, ValidateUpdateUser(Record{"username": nil}).Errors)
	assert.Equal(t, []string{"Username must have at least 2 characters"}, ValidateUpdateUser(Record{"username": "x"}).Errors)
}

func TestValidateCreateRoom(t *testing.T) {
	assert.True(t, ValidateCreateRoom(Record{"code": "ABC"}).Valid)
	assert.True(t, ValidateCreateRoom(Record{"code": "ABC", "status": "playing"}).Valid)

	res := ValidateCreateRoom(Record{"code": "AB", "status": "paused"})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"Code must have at least 3 characters",
		"Status must be one of: lobby, playing, finished",
	}, res.Errors)

	assert.Equal(t, []string{"Code is required"}, ValidateCreateRoom(Record{"code": int64(123)}).Errors)
}

func TestValidateUpdateRoom(t *testing.T) {
	assert.True(t, ValidateUpdateRoom(Record{"status": "finished"}).Valid)
	assert.Equal(t, []string{"Code must be a string"}, ValidateUpdateRoom(Record{"code": false}).Errors)
	assert.Equal(t, []string{"Status must be one of: lobby, playing, finished"}, ValidateUpdateRoom(Record{"status": nil}).Errors)
}

func TestValidateCreateRoomParticipant(t *testing.T) {
	assert.True(t, ValidateCreateRoomParticipant(Record{"room_id": "r1", "user_id": "u1"}).Valid)
	assert.Equal(t,
		[]string{"Room ID is required", "User ID is required"},
		ValidateCreateRoomParticipant(Record{"room_id": "", "user_id": int64(0)}).Errors,
	)
}

func TestValidateCreateRoomInvite(t *testing.T) {
	assert.True(t, ValidateCreateRoomInvite(Record{"room_id": "r1", "code": "INV1"}).Valid)
	assert.True(t, ValidateCreateRoomInvite(Record{"room_id": "r1", "code": "INV1", "max_uses": int64(5)}).Valid)

	res := ValidateCreateRoomInvite(Record{"max_uses": int64(0)})
	assert.Equal(t, []string{
		"Room ID is required",
		"Code is required",
		"Max uses must be a positive number",
	}, res.Errors)

	assert.Equal(t,
		[]string{"Max uses must be a positive number"},
		ValidateCreateRoomInvite(Record{"room_id": "r1", "code": "X", "max_uses": "3"}).Errors,
	)
}

func TestValidateUpdateRoomInvite(t *testing.T) {
	assert.True(t, ValidateUpdateRoomInvite(Record{"uses": int64(0), "max_uses": 2.5}).Valid)
	assert.Equal(t, []string{"Uses must be a non-negative number"}, ValidateUpdateRoomInvite(Record{"uses": int64(-1)}).Errors)
	assert.Equal(t, []string{"Max uses must be a positive number"}, ValidateUpdateRoomInvite(Record{"max_uses": int64(-3)}).Errors)
}

func TestValidateCreateChoice(t *testing.T) {
	assert.True(t, ValidateCreateChoice(Record{"room_id": "r1", "label": "A"}).Valid)

	res := ValidateCreateChoice(Record{})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"Room ID is required", "Label is required"}, res.Errors)
}

func TestValidateUpdateChoice(t *testing.T) {
	assert.True(t, ValidateUpdateChoice(Record{"hits": int64(0)}).Valid)

	res := ValidateUpdateChoice(Record{"label": "", "hits": "many"})
	assert.Equal(t, []string{
		"Label must have at least 1 character",
		"Hits must be a non-negative number",
	}, res.Errors)

	assert.Equal(t, []string{"Label must be a string"}, ValidateUpdateChoice(Record{"label": int64(1)}).Errors)
}

package errors

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseErrorResponse(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "structured API error",
			status:      http.StatusNotFound,
			body:        `{"error":{"code":"not_found","message":"wallet does not exist","details":{"id":"w1"}}}`,
			wantCode:    "not_found",
			wantMessage: "wallet does not exist",
		},
		{
			name:        "flat OAuth error",
			status:      http.StatusBadRequest,
			body:        `{"error":"invalid_grant","error_description":"wrong password"}`,
			wantCode:    "invalid_grant",
			wantMessage: "wrong password",
		},
		{
			name:        "flat OAuth error without description",
			status:      http.StatusUnauthorized,
			body:        `{"error":"invalid_client"}`,
			wantCode:    "invalid_client",
			wantMessage: "invalid_client",
		},
		{
			name:        "plain text body",
			status:      http.StatusBadGateway,
			body:        "upstream unavailable",
			wantMessage: "upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseErrorResponse(errorResponse(tt.status, tt.body))

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestErrorString(t *testing.T) {
	withCode := &Error{StatusCode: 404, Code: "not_found", Message: "missing"}
	assert.Equal(t, "[404] not_found: missing", withCode.Error())

	withoutCode := &Error{StatusCode: 502, Message: "upstream unavailable"}
	assert.Equal(t, "[502] upstream unavailable", withoutCode.Error())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFound(&Error{StatusCode: http.StatusNotFound}))
	assert.True(t, IsUnauthorized(&Error{StatusCode: http.StatusUnauthorized}))
	assert.True(t, IsForbidden(&Error{StatusCode: http.StatusForbidden}))
	assert.True(t, IsBadRequest(&Error{StatusCode: http.StatusBadRequest}))

	assert.False(t, IsNotFound(&Error{StatusCode: http.StatusBadRequest}))
	assert.False(t, IsNotFound(io.EOF))
}

package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/contacts-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type target struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     string
	}{
		{name: "valid json", requestBody: `{"name": "test", "age": 30}`},
		{name: "invalid json", requestBody: `{"name": "test", "age": 30,}`, wantErr: "invalid JSON body"},
		{name: "empty body", requestBody: "", wantErr: "request body is required"},
		{name: "wrong type", requestBody: `{"name": "test", "age": "old"}`, wantErr: "age: must be of type int"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var v target
			err := DecodeJSON(req, &v)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.Equal(t, tc.wantErr, domain.Message(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, target{Name: "test", Age: 30}, v)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type request struct {
		Username string  `json:"username" validate:"min=1,max=100"`
		Nickname *string `json:"nickname" validate:"omitnil,min=1,max=10"`
		Email    *string `json:"email"    validate:"omitnil,email,max=200"`
		Phone    *string `json:"phone"    validate:"omitnil,max=5"`
		Code     string  `json:"code"     validate:"min=3"`
		Kind     string  `json:"kind"     validate:"required,oneof=a b"`
	}
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		req     request
		wantErr string
	}{
		{
			name: "valid",
			req:  request{Username: "eko", Code: "abc", Kind: "a"},
		},
		{
			name: "every rule",
			req: request{
				Nickname: str(""),
				Email:    str("nope"),
				Phone:    str("0123456"),
				Code:     "ab",
			},
			wantErr: "username: length must be between 1 and 100; " +
				"nickname: length must be between 1 and 10; " +
				"email: must be a valid email address; " +
				"phone: length must be at most 5; " +
				"code: length must be at least 3; " +
				"kind: is required",
		},
		{
			name:    "unknown rule",
			req:     request{Username: "eko", Code: "abc", Kind: "c"},
			wantErr: "kind: failed on the 'oneof' rule",
		},
		{
			name: "nil optional fields are skipped",
			req:  request{Username: "eko", Code: "abc", Kind: "b", Nickname: nil, Email: nil},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRequest(&tc.req)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Equal(t, tc.wantErr, domain.Message(err))
		})
	}
}

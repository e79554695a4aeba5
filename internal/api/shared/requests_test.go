package shared

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
		expected  decodeTarget
	}{
		{
			name:     "valid JSON",
			body:     `{"name":"groceries","count":3}`,
			expected: decodeTarget{Name: "groceries", Count: 3},
		},
		{
			name:     "unknown fields ignored",
			body:     `{"name":"groceries","count":3,"extra":true}`,
			expected: decodeTarget{Name: "groceries", Count: 3},
		},
		{
			name:      "malformed JSON",
			body:      `{"name":"groceries",`,
			expectErr: true,
		},
		{
			name:      "empty body",
			body:      ``,
			expectErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.body))
			require.NoError(t, err)

			var target decodeTarget
			err = DecodeJSON(req, &target)

			if tc.expectErr {
				assert.Error(t, err, "Expected decode error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, target)
		})
	}
}

type validatedRequest struct {
	Email string `validate:"required,email"`
	Title string `validate:"required,max=10"`
}

func TestValidate(t *testing.T) {
	valid := validatedRequest{Email: "user@example.com", Title: "short"}
	assert.NoError(t, Validate.Struct(valid), "Expected valid struct to pass validation")

	missing := validatedRequest{Title: "short"}
	assert.Error(t, Validate.Struct(missing), "Expected missing required field to fail")

	tooLong := validatedRequest{Email: "user@example.com", Title: "far too long for the tag"}
	assert.Error(t, Validate.Struct(tooLong), "Expected over-length field to fail")
}

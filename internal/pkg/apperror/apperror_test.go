package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsCarryStatus(t *testing.T) {
	tests := []struct {
		err        *AppError
		wantCode   Code
		wantStatus int
	}{
		{InvalidTarget("gone"), CodeInvalidTarget, http.StatusGone},
		{ContentLengthViolation("too long"), CodeContentLengthViolation, http.StatusUnprocessableEntity},
		{MissingAuthor("name required"), CodeMissingAuthor, http.StatusUnprocessableEntity},
		{Unauthorized("not yours"), CodeUnauthorized, http.StatusForbidden},
		{NotFound("missing"), CodeNotFound, http.StatusNotFound},
		{Validation("bad input"), CodeValidation, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantCode), func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
		})
	}
}

func TestFromUnwrapsWrappedErrors(t *testing.T) {
	base := NotFound("label not found")
	wrapped := fmt.Errorf("listing labels: %w", base)

	got, ok := From(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, got.Code)

	_, ok = From(errors.New("plain"))
	assert.False(t, ok)

	_, ok = From(nil)
	assert.False(t, ok)
}

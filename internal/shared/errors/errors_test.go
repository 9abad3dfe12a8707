package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsMapTypeAndCode(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("Invalid input"), ErrorTypeValidation, http.StatusBadRequest},
		{"forbidden", NewForbiddenError("Forbidden"), ErrorTypeForbidden, http.StatusForbidden},
		{"rate limited", NewRateLimitedError("Too many requests"), ErrorTypeRateLimited, http.StatusTooManyRequests},
		{"bad request", NewBadRequestError("Invalid JSON"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"bad gateway", NewBadGatewayError("Failed to generate bios. Please try again."), ErrorTypeBadGateway, http.StatusBadGateway},
		{"internal", NewInternalError("No response from AI"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestErrorStringIncludesDetailsWhenPresent(t *testing.T) {
	assert.Equal(t, "internal_error: No response from AI",
		NewInternalError("No response from AI").Error())
	assert.Equal(t, "bad_gateway: Failed to generate bios. Please try again. (upstream status 503)",
		NewBadGatewayError("Failed to generate bios. Please try again.", "upstream status 503").Error())
}

func TestGetAppErrorUnwraps(t *testing.T) {
	appErr := NewBadGatewayError("Failed to generate tweets. Please try again.")
	wrapped := fmt.Errorf("generate tweet: %w", appErr)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, appErr, got)
	assert.True(t, IsAppError(wrapped))
}

func TestGetAppErrorNilForPlainError(t *testing.T) {
	err := fmt.Errorf("dial tcp: connection refused")
	assert.Nil(t, GetAppError(err))
	assert.False(t, IsAppError(err))
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("Invalid input")))
	assert.False(t, IsValidationError(NewInternalError("boom")))
	assert.False(t, IsValidationError(fmt.Errorf("boom")))
}

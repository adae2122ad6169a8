package errors

import (
	"net/http"
	"testing"

	"nutriplan/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrGenerationFailed.WithDetails("upstream 503")

	assert.True(t, errors.Is(detailed, ErrGenerationFailed))
	assert.True(t, errors.Is(errors.Wrap(detailed, "attempt 3"), ErrGenerationFailed))
	assert.False(t, errors.Is(detailed, ErrMalformedArtifact))
	assert.Equal(t, "upstream 503", detailed.Details())
	assert.Empty(t, ErrGenerationFailed.Details())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError([]FieldError{
		{Field: "age", Message: "Age must be between 5 and 120 years"},
		{Field: "weight", Message: "Weight must be between 5kg and 300kg"},
	})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "Age must be between 5 and 120 years, Weight must be between 5kg and 300kg", err.Details())
	require.Len(t, err.Fields(), 2)

	var appErr AppError
	require.True(t, errors.As(errors.Wrap(err, "plan"), &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDatabaseExecuteError(cause, "insert plan")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "database execution failed: connection refused", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestGenerationError(t *testing.T) {
	cause := ErrMalformedArtifact.WithDetails("schedule has 6 entries")
	err := NewGenerationError(cause)

	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.True(t, errors.Is(err, ErrMalformedArtifact))
	assert.Equal(t, http.StatusBadGateway, err.HTTPCode())
	assert.Equal(t, "GENERATION_FAILED", err.ErrorCode())
	assert.Equal(t, "Generated plan is malformed", err.Details())
	assert.Equal(t, "plan generation failed: Generated plan is malformed", err.Error())

	appErr, ok := errors.Find[AppError](errors.Wrap(err, "generate"))
	require.True(t, ok)
	assert.Equal(t, "GENERATION_FAILED", appErr.ErrorCode())
}

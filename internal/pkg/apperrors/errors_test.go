package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomErrorUnwrap(t *testing.T) {
	err := NewResourceNotFoundError("post with ID 42 not found")

	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "post with ID 42 not found", err.Error())
}

func TestCustomErrorFallsBackToSentinelMessage(t *testing.T) {
	err := &CustomError{Err: ErrPermissionDenied}
	assert.Equal(t, "permission denied", err.Error())
}

func TestCustomErrorThroughWrapping(t *testing.T) {
	inner := NewForbiddenError("cannot delete another college's user")
	wrapped := fmt.Errorf("admin remove user: %w", inner)

	assert.True(t, errors.Is(wrapped, ErrPermissionDenied))
	assert.False(t, errors.Is(wrapped, ErrResourceNotFound))
}

func TestCustomErrorWithDetails(t *testing.T) {
	err := NewCustomError(ErrInvalidArgument, "invalid status value").
		WithCode("VAL_001").
		WithDetails(map[string]interface{}{"field": "status"})

	var customErr *CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "VAL_001", customErr.Code)
	assert.Equal(t, "status", customErr.Details["field"])
}

func TestIsMatchesAnyTarget(t *testing.T) {
	err := NewInvalidArgumentError("self-follow is not allowed")

	assert.True(t, Is(err, ErrPermissionDenied, ErrInvalidArgument, ErrResourceNotFound))
	assert.False(t, Is(err, ErrPermissionDenied, ErrResourceNotFound))
}

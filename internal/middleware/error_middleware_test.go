package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runErrorHandler(t *testing.T, err error) (int, *dto.ErrorResponse) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, &body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"post not found", apperrors.ErrPostNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"admin self action", apperrors.ErrAdminSelfAction, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"unauthorized", apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"inactive account", apperrors.ErrAccountInactive, http.StatusUnauthorized, dto.ErrorCodeAccountInactive},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"invalid argument", apperrors.ErrInvalidArgument, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"empty post", apperrors.ErrEmptyPost, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"self follow", apperrors.ErrSelfFollow, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"duplicate email on registration", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"duplicate college on registration", apperrors.ErrCollegeAlreadyExists, http.StatusBadRequest, dto.ErrorCodeInvalidArgument},
		{"conflict", apperrors.ErrConflict, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"storage failure", apperrors.ErrStorageFailure, http.StatusInternalServerError, dto.ErrorCodeStorageFailure},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runErrorHandler(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleAPIErrorWrappedInvariantViolations(t *testing.T) {
	// Services wrap these sentinels in a CustomError carrying the user
	// message; the wrap must not change the status class.
	tests := []struct {
		name string
		err  error
	}{
		{"wrapped self follow", apperrors.NewCustomError(apperrors.ErrSelfFollow, "users cannot follow themselves")},
		{"wrapped duplicate college", apperrors.NewCustomError(apperrors.ErrCollegeAlreadyExists, "a college with this name is already registered")},
		{"wrapped duplicate email", apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "this email is already in use")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runErrorHandler(t, tt.err)
			assert.Equal(t, http.StatusBadRequest, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, dto.ErrorCodeInvalidArgument, body.Error.Code)
		})
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	err := apperrors.NewResourceNotFoundError("Event not found")

	status, body := runErrorHandler(t, err)

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, body.Error)
	assert.Equal(t, "Event not found", body.Error.Message)
}

func TestHandleAPIErrorHidesInternalDetails(t *testing.T) {
	err := errors.New("pq: connection refused on host 10.0.0.3")

	_, body := runErrorHandler(t, err)

	require.NotNil(t, body.Error)
	assert.Equal(t, "Internal server error", body.Error.Message)
	assert.NotContains(t, body.Error.Message, "10.0.0.3")
}

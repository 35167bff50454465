package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sujeet/alumnisphere/internal/app/models/dto"
	"github.com/sujeet/alumnisphere/internal/pkg/apperrors"
	"github.com/sujeet/alumnisphere/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Services return
// apperrors sentinels (possibly wrapped in a CustomError carrying a
// user-facing message); everything unrecognized becomes a 500 without
// leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	message := userMessage(err)

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrCollegeNotFound,
		apperrors.ErrPostNotFound,
		apperrors.ErrCommentNotFound,
		apperrors.ErrEventNotFound,
		apperrors.ErrDonationNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "Resource not found")

	case errors.Is(err, apperrors.ErrPermissionDenied),
		errors.Is(err, apperrors.ErrAdminSelfAction):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, message, "Permission denied")

	case errors.Is(err, apperrors.ErrUnauthorized):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, message, "Authentication required")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "", "Invalid credentials")

	case errors.Is(err, apperrors.ErrAccountInactive):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeAccountInactive, message, "Account is not active")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "", "Token expired")

	case errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "", "Invalid token")

	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message, "Validation failed")

	// Domain invariant violations: self-follow, empty post, duplicate
	// college/email on registration all report as bad requests.
	case apperrors.Is(err, apperrors.ErrInvalidArgument,
		apperrors.ErrEmptyPost,
		apperrors.ErrSelfFollow,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrCollegeAlreadyExists):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidArgument, message, "Invalid request")

	case apperrors.Is(err, apperrors.ErrConflict, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, message, "Resource already exists")

	case errors.Is(err, apperrors.ErrStorageFailure):
		respond(c, http.StatusInternalServerError, dto.ErrorCodeStorageFailure, message, "Storage operation failed")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "", "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message, fallback string) {
	if message == "" {
		message = fallback
	}
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// userMessage extracts the user-facing message a CustomError carries
func userMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		return custom.Message
	}
	return ""
}

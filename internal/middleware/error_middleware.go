package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/campushub/internal/app/models/dto"
	"github.com/emre/campushub/internal/app/repositories"
	"github.com/emre/campushub/internal/pkg/apperrors"
	"github.com/emre/campushub/internal/pkg/logger"
)

// HandleAPIError maps service errors onto the standard error envelope.
// Controllers funnel every error through here so status codes stay
// consistent across endpoints.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrFacultyNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrEnrollmentNotFound,
		apperrors.ErrAssignmentNotFound,
		apperrors.ErrExamNotFound,
		repositories.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case apperrors.Is(err, apperrors.ErrCourseCapacityFull):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, err.Error())))

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrConflict,
		apperrors.ErrStudentAlreadyExists,
		apperrors.ErrFacultyAlreadyExists,
		apperrors.ErrCourseCodeExists,
		apperrors.ErrAlreadyEnrolled,
		repositories.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeConflict, err.Error())))

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())))

	case apperrors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case apperrors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled API error")
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}

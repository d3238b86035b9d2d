package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/logger"
)

// HandleAPIError maps service and repository errors to HTTP responses.
// A wrapped CustomError supplies the user-facing message; the sentinel it
// wraps decides the status code and error code.
func HandleAPIError(c *gin.Context, err error) {
	message := userMessage(err)

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed) || errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, message, "Validation failed")

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrAreaNotFound),
		errors.Is(err, apperrors.ErrCareerNotFound),
		errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, message, "Resource not found")

	case errors.Is(err, apperrors.ErrAreaNameExists),
		errors.Is(err, apperrors.ErrTeacherEmailExists),
		errors.Is(err, apperrors.ErrStudentNumberExists),
		errors.Is(err, apperrors.ErrStudentEmailExists),
		errors.Is(err, apperrors.ErrStudentUniqueViolation):
		respond(c, http.StatusConflict, dto.ErrorCodeUniqueConflict, message, "Resource already exists")

	case errors.Is(err, apperrors.ErrAreaHasRelations),
		errors.Is(err, apperrors.ErrCareerHasRelations),
		errors.Is(err, apperrors.ErrCourseHasRelations),
		errors.Is(err, apperrors.ErrTeacherHasRelations),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeReferentialConflict, message, "Resource is referenced by other records")

	case errors.Is(err, apperrors.ErrExternalService):
		respond(c, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, message, "External service failure")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
			WithDetails(err.Error())
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error:     detail,
			Timestamp: time.Now(),
		})
	}
}

// userMessage extracts the client-facing message: a CustomError's message
// when present, otherwise the classified error's own text.
func userMessage(err error) string {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return err.Error()
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message, fallback string) {
	if message == "" {
		message = fallback
	}
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}

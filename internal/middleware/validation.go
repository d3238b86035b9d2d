package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
)

// BindJSON binds the request body into obj and writes the standard
// validation response on failure. It reports whether binding succeeded.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		message := "Invalid request body"
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			message = formatValidationError(errs[0])
		}
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)
		errorDetail = errorDetail.WithDetails(err.Error())
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

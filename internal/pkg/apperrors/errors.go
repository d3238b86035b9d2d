package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrExternalService  = errors.New("external service failure")
)

// Academic area errors
var (
	ErrAreaNotFound     = errors.New("academic area not found")
	ErrAreaNameExists   = errors.New("academic area with this name already exists")
	ErrAreaHasRelations = errors.New("academic area is referenced by careers, courses or teachers and cannot be deleted")
)

// Career errors
var (
	ErrCareerNotFound     = errors.New("career not found")
	ErrCareerHasRelations = errors.New("career has enrolled students and cannot be deleted")
)

// Course errors
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseHasRelations = errors.New("course has enrolled students and cannot be deleted")
)

// Teacher errors
var (
	ErrTeacherNotFound     = errors.New("teacher not found")
	ErrTeacherEmailExists  = errors.New("teacher with this email already exists")
	ErrTeacherHasRelations = errors.New("teacher is assigned to courses and cannot be deleted")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentNumberExists    = errors.New("student number is already in use")
	ErrStudentEmailExists     = errors.New("student email is already in use")
	ErrStudentUniqueViolation = errors.New("student number or email is already in use")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation failure with a user-facing message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a user-facing message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

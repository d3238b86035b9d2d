package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/helpers"
)

// Form-value parsing for the persist shape. Validation fails fast with a
// single blocking message, before any database call.

func requiredString(label, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s is required", label))
	}
	return trimmed, nil
}

// optionalString trims the value; the empty string maps to nil.
func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func requiredPositiveInt(label, value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s is required", label))
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", label))
	}
	if n <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be greater than zero", label))
	}
	return n, nil
}

// optionalPositiveInt parses an optional numeric field; the empty string
// maps to nil, anything present must be a positive integer.
func optionalPositiveInt(label, value string) (*int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", label))
	}
	if n <= 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be greater than zero", label))
	}
	return &n, nil
}

func requiredID(label, value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s is required", label))
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a valid selection", label))
	}
	return id, nil
}

// optionalID parses an optional foreign-key selection; the empty string
// maps to nil.
func optionalID(label, value string) (*int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a valid selection", label))
	}
	return &id, nil
}

func requiredDate(label, value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("%s is required", label))
	}
	t, err := helpers.ParseDate(trimmed)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label))
	}
	return t, nil
}

// optionalDate parses an optional date field; the empty string maps to nil.
func optionalDate(label, value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	t, err := helpers.ParseDate(trimmed)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label))
	}
	return &t, nil
}

// semesterValue parses the current-semester field, defaulting to 1 when
// blank and enforcing the ≥1 rule.
func semesterValue(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, apperrors.NewValidationError("current semester must be a number")
	}
	if n < 1 {
		return 0, apperrors.NewValidationError("current semester must be at least 1")
	}
	return n, nil
}

// gradeValue parses the optional average-grade field, enforcing the 0-100
// range. The empty string maps to nil.
func gradeValue(value string) (*float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	g, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("average grade must be a number")
	}
	if g < 0 || g > 100 {
		return nil, apperrors.NewValidationError("average grade must be between 0 and 100")
	}
	return &g, nil
}

// enumValue validates a field against its allowed values, substituting the
// default when the field is blank.
func enumValue(label, value, defaultValue string, allowed []string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return defaultValue, nil
	}
	if !models.IsValidValue(trimmed, allowed) {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", ")))
	}
	return trimmed, nil
}

package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

func assertValidationError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed), "expected a validation error, got %v", err)
	assert.Equal(t, message, err.Error())
}

func TestRequiredString(t *testing.T) {
	got, err := requiredString("the name", "  Mathematics  ")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", got)

	_, err = requiredString("the name", "   ")
	assertValidationError(t, err, "the name is required")
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, optionalString("  "))

	got := optionalString(" 555-0101 ")
	require.NotNil(t, got)
	assert.Equal(t, "555-0101", *got)
}

func TestRequiredPositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr string
	}{
		{name: "valid", value: "8", want: 8},
		{name: "trims spaces", value: " 12 ", want: 12},
		{name: "empty", value: "", wantErr: "the duration is required"},
		{name: "not a number", value: "eight", wantErr: "the duration must be a number"},
		{name: "zero", value: "0", wantErr: "the duration must be greater than zero"},
		{name: "negative", value: "-3", wantErr: "the duration must be greater than zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := requiredPositiveInt("the duration", tt.value)
			if tt.wantErr != "" {
				assertValidationError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalPositiveInt(t *testing.T) {
	got, err := optionalPositiveInt("the credits", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = optionalPositiveInt("the credits", "6")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 6, *got)

	_, err = optionalPositiveInt("the credits", "-1")
	assertValidationError(t, err, "the credits must be greater than zero")
}

func TestRequiredID(t *testing.T) {
	got, err := requiredID("the career", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = requiredID("the career", "")
	assertValidationError(t, err, "the career is required")

	_, err = requiredID("the career", "abc")
	assertValidationError(t, err, "the career must be a valid selection")

	_, err = requiredID("the career", "0")
	assertValidationError(t, err, "the career must be a valid selection")
}

func TestOptionalID(t *testing.T) {
	got, err := optionalID("the teacher", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = optionalID("the teacher", "7")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(7), *got)

	_, err = optionalID("the teacher", "-7")
	assertValidationError(t, err, "the teacher must be a valid selection")
}

func TestRequiredDate(t *testing.T) {
	got, err := requiredDate("the birth date", "2004-05-17")
	require.NoError(t, err)
	assert.Equal(t, 2004, got.Year())
	assert.Equal(t, 17, got.Day())

	_, err = requiredDate("the birth date", "")
	assertValidationError(t, err, "the birth date is required")

	_, err = requiredDate("the birth date", "17/05/2004")
	assertValidationError(t, err, "the birth date must be a date in YYYY-MM-DD format")
}

func TestOptionalDate(t *testing.T) {
	got, err := optionalDate("the hire date", "")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = optionalDate("the hire date", "2019-09-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2019, got.Year())

	_, err = optionalDate("the hire date", "soon")
	assertValidationError(t, err, "the hire date must be a date in YYYY-MM-DD format")
}

func TestSemesterValue(t *testing.T) {
	got, err := semesterValue("")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = semesterValue("5")
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = semesterValue("0")
	assertValidationError(t, err, "current semester must be at least 1")

	_, err = semesterValue("two")
	assertValidationError(t, err, "current semester must be a number")
}

func TestGradeValue(t *testing.T) {
	got, err := gradeValue("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = gradeValue("87.5")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 87.5, *got)

	got, err = gradeValue("0")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, *got)

	got, err = gradeValue("100")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 100.0, *got)

	_, err = gradeValue("100.1")
	assertValidationError(t, err, "average grade must be between 0 and 100")

	_, err = gradeValue("-0.5")
	assertValidationError(t, err, "average grade must be between 0 and 100")

	_, err = gradeValue("high")
	assertValidationError(t, err, "average grade must be a number")
}

func TestEnumValue(t *testing.T) {
	got, err := enumValue("the career status", "", models.CareerStatusActive, models.CareerStatuses)
	require.NoError(t, err)
	assert.Equal(t, models.CareerStatusActive, got)

	got, err = enumValue("the career status", "Inactive", models.CareerStatusActive, models.CareerStatuses)
	require.NoError(t, err)
	assert.Equal(t, models.CareerStatusInactive, got)

	_, err = enumValue("the career status", "Archived", models.CareerStatusActive, models.CareerStatuses)
	assertValidationError(t, err, "the career status must be one of: Active, Inactive")
}

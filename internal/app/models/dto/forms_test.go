package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
)

func intPtr(i int) *int              { return &i }
func int64Ptr(i int64) *int64        { return &i }
func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestNewCourseFormFlattensOptionals(t *testing.T) {
	course := &models.Course{
		ID:            3,
		Name:          "Algorithms",
		Level:         models.CourseLevelBachelor,
		Modality:      models.CourseModalityHybrid,
		DurationWeeks: intPtr(16),
		Credits:       intPtr(8),
		Status:        models.CourseStatusActive,
		AreaID:        int64Ptr(2),
	}

	form := NewCourseForm(course)
	assert.Equal(t, "Algorithms", form.Name)
	assert.Equal(t, "16", form.DurationWeeks)
	assert.Equal(t, "8", form.Credits)
	assert.Equal(t, "2", form.AreaID)

	// Absent optionals map to the empty string, never "0" or "null"
	assert.Equal(t, "", form.MaxCapacity)
	assert.Equal(t, "", form.TeacherID)
}

func TestEmptyCourseFormDefaults(t *testing.T) {
	form := EmptyCourseForm()
	assert.Equal(t, models.CourseLevelDiploma, form.Level)
	assert.Equal(t, models.CourseModalityInPerson, form.Modality)
	assert.Equal(t, models.CourseStatusActive, form.Status)
	assert.Empty(t, form.Name)
	assert.Empty(t, form.AreaID)
}

func TestNewTeacherForm(t *testing.T) {
	hired := time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC)
	teacher := &models.Teacher{
		ID:               5,
		FirstName:        "Laura",
		LastNamePaternal: "Mendez",
		LastNameMaternal: strPtr("Ortiz"),
		Email:            "laura.mendez@campus.edu",
		HireDate:         timePtr(hired),
		AreaID:           4,
		AcademicLevel:    "PhD",
	}

	form := NewTeacherForm(teacher)
	assert.Equal(t, "Laura", form.FirstName)
	assert.Equal(t, "Ortiz", form.LastNameMaternal)
	assert.Equal(t, "2019-09-01", form.HireDate)
	assert.Equal(t, "4", form.AreaID)
	assert.Equal(t, "", form.Phone)
}

func TestNewStudentFormGradeFormatting(t *testing.T) {
	student := &models.Student{
		ID:               1,
		StudentNumber:    "A2024-101",
		FirstName:        "Ana",
		LastNamePaternal: "Lopez",
		Email:            "ana@campus.edu",
		BirthDate:        time.Date(2004, 3, 12, 0, 0, 0, 0, time.UTC),
		EnrollmentDate:   time.Date(2024, 8, 19, 0, 0, 0, 0, time.UTC),
		CareerID:         1,
		CourseID:         2,
		CurrentSemester:  3,
		AverageGrade:     floatPtr(91.25),
		Status:           models.StudentStatusActive,
	}

	form := NewStudentForm(student)
	// Trailing zeros never appear, so "91.25" not "91.250000"
	assert.Equal(t, "91.25", form.AverageGrade)
	assert.Equal(t, "2004-03-12", form.BirthDate)
	assert.Equal(t, "3", form.CurrentSemester)

	student.AverageGrade = floatPtr(90)
	assert.Equal(t, "90", NewStudentForm(student).AverageGrade)

	student.AverageGrade = nil
	assert.Equal(t, "", NewStudentForm(student).AverageGrade)
}

func TestEmptyStudentForm(t *testing.T) {
	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	form := EmptyStudentForm(now)
	assert.Equal(t, "2026-01-15", form.EnrollmentDate)
	assert.Equal(t, "1", form.CurrentSemester)
	assert.Equal(t, models.StudentStatusActive, form.Status)
}

func TestNewCareerForm(t *testing.T) {
	career := &models.Career{
		ID:                2,
		Name:              "Nursing",
		AcademicLevel:     "Bachelor",
		DurationSemesters: 8,
		TotalCredits:      320,
		Status:            models.CareerStatusActive,
		AreaID:            3,
		Area:              &models.AcademicArea{ID: 3, Name: "Health Sciences"},
	}

	form := NewCareerForm(career)
	// The embedded relation flattens back to its scalar id
	assert.Equal(t, "3", form.AreaID)
	assert.Equal(t, "8", form.DurationSemesters)
	assert.Equal(t, "320", form.TotalCredits)
}

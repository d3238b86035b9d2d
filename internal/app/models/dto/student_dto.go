package dto

import (
	"strconv"
	"time"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/helpers"
)

// StudentForm is the flattened edit shape of a student. Every field is a
// string; optional fields map to the empty string, never null.
type StudentForm struct {
	StudentNumber    string `json:"studentNumber"`
	FirstName        string `json:"firstName"`
	LastNamePaternal string `json:"lastNamePaternal"`
	LastNameMaternal string `json:"lastNameMaternal"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	BirthDate        string `json:"birthDate"`
	EnrollmentDate   string `json:"enrollmentDate"`
	CareerID         string `json:"careerId"`
	CourseID         string `json:"courseId"`
	CurrentSemester  string `json:"currentSemester"`
	AverageGrade     string `json:"averageGrade"`
	Status           string `json:"status"`
}

// NewStudentForm builds the edit shape from a stored row, flattening the
// embedded career and course back to their scalar ids.
func NewStudentForm(s *models.Student) StudentForm {
	form := StudentForm{
		StudentNumber:    s.StudentNumber,
		FirstName:        s.FirstName,
		LastNamePaternal: s.LastNamePaternal,
		Email:            s.Email,
		BirthDate:        helpers.FormatDate(s.BirthDate),
		EnrollmentDate:   helpers.FormatDate(s.EnrollmentDate),
		CareerID:         strconv.FormatInt(s.CareerID, 10),
		CourseID:         strconv.FormatInt(s.CourseID, 10),
		CurrentSemester:  strconv.Itoa(s.CurrentSemester),
		Status:           s.Status,
	}
	if s.LastNameMaternal != nil {
		form.LastNameMaternal = *s.LastNameMaternal
	}
	if s.Phone != nil {
		form.Phone = *s.Phone
	}
	if s.AverageGrade != nil {
		form.AverageGrade = strconv.FormatFloat(*s.AverageGrade, 'f', -1, 64)
	}
	return form
}

// EmptyStudentForm is the blank create-mode form. The enrollment date
// defaults to today.
func EmptyStudentForm(now time.Time) StudentForm {
	return StudentForm{
		EnrollmentDate:  helpers.FormatDate(now),
		CurrentSemester: "1",
		Status:          models.StudentStatusActive,
	}
}

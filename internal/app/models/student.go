package models

import (
	"strings"
	"time"
)

// Student represents an enrolled student
type Student struct {
	ID               int64     `json:"id"`
	StudentNumber    string    `json:"studentNumber"`
	FirstName        string    `json:"firstName"`
	LastNamePaternal string    `json:"lastNamePaternal"`
	LastNameMaternal *string   `json:"lastNameMaternal,omitempty"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone,omitempty"`
	BirthDate        time.Time `json:"birthDate"`
	EnrollmentDate   time.Time `json:"enrollmentDate"`
	CareerID         int64     `json:"careerId"`
	CourseID         int64     `json:"courseId"`
	CurrentSemester  int       `json:"currentSemester"`
	AverageGrade     *float64  `json:"averageGrade,omitempty"`
	Status           string    `json:"status"`

	// Relations (populated on list/detail reads)
	Career *Career `json:"career,omitempty"`
	Course *Course `json:"course,omitempty"`
}

// FullName joins the name parts, skipping the missing maternal surname.
func (s *Student) FullName() string {
	parts := []string{s.FirstName, s.LastNamePaternal}
	if s.LastNameMaternal != nil && *s.LastNameMaternal != "" {
		parts = append(parts, *s.LastNameMaternal)
	}
	return strings.Join(parts, " ")
}

// CareerName returns the embedded career name, or the empty string when
// the relation is not populated.
func (s *Student) CareerName() string {
	if s.Career == nil {
		return ""
	}
	return s.Career.Name
}

// CourseName returns the embedded course name, or the empty string when
// the relation is not populated.
func (s *Student) CourseName() string {
	if s.Course == nil {
		return ""
	}
	return s.Course.Name
}

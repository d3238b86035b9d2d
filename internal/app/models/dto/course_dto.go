package dto

import (
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
)

// CourseForm is the flattened edit shape of a course. Optional numeric and
// relational fields map to the empty string, never null.
type CourseForm struct {
	Name          string `json:"name"`
	Level         string `json:"level"`
	Modality      string `json:"modality"`
	DurationWeeks string `json:"durationWeeks"`
	Credits       string `json:"credits"`
	MaxCapacity   string `json:"maxCapacity"`
	Status        string `json:"status"`
	AreaID        string `json:"areaId"`
	TeacherID     string `json:"teacherId"`
}

// NewCourseForm builds the edit shape from a stored row, flattening the
// embedded area and teacher back to their scalar ids.
func NewCourseForm(c *models.Course) CourseForm {
	form := CourseForm{
		Name:     c.Name,
		Level:    c.Level,
		Modality: c.Modality,
		Status:   c.Status,
	}
	if c.DurationWeeks != nil {
		form.DurationWeeks = strconv.Itoa(*c.DurationWeeks)
	}
	if c.Credits != nil {
		form.Credits = strconv.Itoa(*c.Credits)
	}
	if c.MaxCapacity != nil {
		form.MaxCapacity = strconv.Itoa(*c.MaxCapacity)
	}
	if c.AreaID != nil {
		form.AreaID = strconv.FormatInt(*c.AreaID, 10)
	}
	if c.TeacherID != nil {
		form.TeacherID = strconv.FormatInt(*c.TeacherID, 10)
	}
	return form
}

// EmptyCourseForm is the blank create-mode form.
func EmptyCourseForm() CourseForm {
	return CourseForm{
		Level:    models.CourseLevelDiploma,
		Modality: models.CourseModalityInPerson,
		Status:   models.CourseStatusActive,
	}
}

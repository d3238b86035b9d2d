package models

// Course represents a course in the campus catalog. Most fields beyond the
// name are optional while a course is being planned.
type Course struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Level         string `json:"level"`
	Modality      string `json:"modality"`
	DurationWeeks *int   `json:"durationWeeks,omitempty"`
	Credits       *int   `json:"credits,omitempty"`
	MaxCapacity   *int   `json:"maxCapacity,omitempty"`
	Status        string `json:"status"`
	AreaID        *int64 `json:"areaId,omitempty"`
	TeacherID     *int64 `json:"teacherId,omitempty"`

	// Relations (populated on list/detail reads)
	Area    *AcademicArea `json:"area,omitempty"`
	Teacher *Teacher      `json:"teacher,omitempty"`
}

// AreaName returns the embedded area name, or the empty string when the
// relation is not populated.
func (c *Course) AreaName() string {
	if c.Area == nil {
		return ""
	}
	return c.Area.Name
}

// TeacherName returns the embedded teacher's full name, or the empty
// string when the relation is not populated.
func (c *Course) TeacherName() string {
	if c.Teacher == nil {
		return ""
	}
	return c.Teacher.FullName()
}

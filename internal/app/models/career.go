package models

// Career represents an academic program offered by the campus
type Career struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	AcademicLevel     string `json:"academicLevel"`
	DurationSemesters int    `json:"durationSemesters"`
	TotalCredits      int    `json:"totalCredits"`
	Status            string `json:"status"`
	AreaID            int64  `json:"areaId"`

	// Relation (populated on list/detail reads)
	Area *AcademicArea `json:"area,omitempty"`
}

// AreaName returns the embedded area name, or the empty string when the
// relation is not populated.
func (c *Career) AreaName() string {
	if c.Area == nil {
		return ""
	}
	return c.Area.Name
}

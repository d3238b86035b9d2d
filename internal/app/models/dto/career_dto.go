package dto

import (
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
)

// CareerForm is the flattened edit shape of a career. Every field is a
// string so it binds directly to form inputs; numeric fields are parsed
// back on save.
type CareerForm struct {
	Name              string `json:"name"`
	AcademicLevel     string `json:"academicLevel"`
	DurationSemesters string `json:"durationSemesters"`
	TotalCredits      string `json:"totalCredits"`
	Status            string `json:"status"`
	AreaID            string `json:"areaId"`
}

// NewCareerForm builds the edit shape from a stored row, flattening the
// embedded area back to its scalar id.
func NewCareerForm(c *models.Career) CareerForm {
	return CareerForm{
		Name:              c.Name,
		AcademicLevel:     c.AcademicLevel,
		DurationSemesters: strconv.Itoa(c.DurationSemesters),
		TotalCredits:      strconv.Itoa(c.TotalCredits),
		Status:            c.Status,
		AreaID:            strconv.FormatInt(c.AreaID, 10),
	}
}

// EmptyCareerForm is the blank create-mode form.
func EmptyCareerForm() CareerForm {
	return CareerForm{Status: models.CareerStatusActive}
}

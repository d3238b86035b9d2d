package dto

import (
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/helpers"
)

// TeacherForm is the flattened edit shape of a teacher. Optional fields
// map to the empty string, never null.
type TeacherForm struct {
	FirstName        string `json:"firstName"`
	LastNamePaternal string `json:"lastNamePaternal"`
	LastNameMaternal string `json:"lastNameMaternal"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	HireDate         string `json:"hireDate"`
	AreaID           string `json:"areaId"`
	AcademicLevel    string `json:"academicLevel"`
}

// NewTeacherForm builds the edit shape from a stored row.
func NewTeacherForm(t *models.Teacher) TeacherForm {
	form := TeacherForm{
		FirstName:        t.FirstName,
		LastNamePaternal: t.LastNamePaternal,
		Email:            t.Email,
		AreaID:           strconv.FormatInt(t.AreaID, 10),
		AcademicLevel:    t.AcademicLevel,
	}
	if t.LastNameMaternal != nil {
		form.LastNameMaternal = *t.LastNameMaternal
	}
	if t.Phone != nil {
		form.Phone = *t.Phone
	}
	if t.HireDate != nil {
		form.HireDate = helpers.FormatDate(*t.HireDate)
	}
	return form
}

// EmptyTeacherForm is the blank create-mode form.
func EmptyTeacherForm() TeacherForm {
	return TeacherForm{}
}

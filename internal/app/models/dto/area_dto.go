package dto

import "github.com/fergood-2703/SIA-FCP/internal/app/models"

// AreaForm is the flattened edit shape of an academic area.
type AreaForm struct {
	Name string `json:"name"`
}

// NewAreaForm builds the edit shape from a stored row.
func NewAreaForm(a *models.AcademicArea) AreaForm {
	return AreaForm{Name: a.Name}
}

// EmptyAreaForm is the blank create-mode form.
func EmptyAreaForm() AreaForm {
	return AreaForm{}
}

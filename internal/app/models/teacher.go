package models

import (
	"strings"
	"time"
)

// Teacher represents a member of the academic staff
type Teacher struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"firstName"`
	LastNamePaternal string     `json:"lastNamePaternal"`
	LastNameMaternal *string    `json:"lastNameMaternal,omitempty"`
	Email            string     `json:"email"`
	Phone            *string    `json:"phone,omitempty"`
	HireDate         *time.Time `json:"hireDate,omitempty"`
	AreaID           int64      `json:"areaId"`
	AcademicLevel    string     `json:"academicLevel"`

	// Relation (populated on list/detail reads)
	Area *AcademicArea `json:"area,omitempty"`
}

// FullName joins the name parts, skipping the missing maternal surname.
func (t *Teacher) FullName() string {
	parts := []string{t.FirstName, t.LastNamePaternal}
	if t.LastNameMaternal != nil && *t.LastNameMaternal != "" {
		parts = append(parts, *t.LastNameMaternal)
	}
	return strings.Join(parts, " ")
}

// AreaName returns the embedded area name, or the empty string when the
// relation is not populated.
func (t *Teacher) AreaName() string {
	if t.Area == nil {
		return ""
	}
	return t.Area.Name
}

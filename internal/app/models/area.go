package models

// AcademicArea represents a field of knowledge at the campus
type AcademicArea struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

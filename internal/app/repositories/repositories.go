package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories is a container for all repositories
type Repositories struct {
	AreaRepository      *AreaRepository
	CareerRepository    *CareerRepository
	CourseRepository    *CourseRepository
	TeacherRepository   *TeacherRepository
	StudentRepository   *StudentRepository
	DashboardRepository *DashboardRepository
}

// NewRepositories creates a new Repositories container
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AreaRepository:      NewAreaRepository(db),
		CareerRepository:    NewCareerRepository(db),
		CourseRepository:    NewCourseRepository(db),
		TeacherRepository:   NewTeacherRepository(db),
		StudentRepository:   NewStudentRepository(db),
		DashboardRepository: NewDashboardRepository(db),
	}
}

// newStatementBuilder returns a squirrel builder with postgres placeholders.
func newStatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

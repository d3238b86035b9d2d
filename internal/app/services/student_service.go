package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

// StudentStore is the data access the student service depends on.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// StudentListQuery carries the list filters of the students screen.
type StudentListQuery struct {
	Search   string
	CareerID string
	CourseID string
	Status   string
}

// StudentService defines the interface for student operations
type StudentService interface {
	List(ctx context.Context, query StudentListQuery) ([]*models.Student, int, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetForm(ctx context.Context, id int64) (dto.StudentForm, error)
	Create(ctx context.Context, form dto.StudentForm) (*models.Student, error)
	Update(ctx context.Context, id int64, form dto.StudentForm) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	students StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore) StudentService {
	return &studentServiceImpl{students: students}
}

// FilterStudents reduces the full student list by the query. Pure function
// over its inputs. Search covers the full name, career name, course name,
// email and student number.
func FilterStudents(students []*models.Student, query StudentListQuery) []*models.Student {
	term := normalizeSearchTerm(query.Search)

	filtered := []*models.Student{}
	for _, student := range students {
		matchSearch := searchMatches(term,
			student.FullName(),
			student.CareerName(),
			student.CourseName(),
			student.Email,
			student.StudentNumber,
		)
		if matchSearch &&
			filterMatches(query.CareerID, strconv.FormatInt(student.CareerID, 10)) &&
			filterMatches(query.CourseID, strconv.FormatInt(student.CourseID, 10)) &&
			filterMatches(query.Status, student.Status) {
			filtered = append(filtered, student)
		}
	}
	return filtered
}

func (s *studentServiceImpl) List(ctx context.Context, query StudentListQuery) ([]*models.Student, int, error) {
	students, err := s.students.GetAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving students: %w", err)
	}
	return FilterStudents(students, query), len(students), nil
}

func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}
	return s.students.GetByID(ctx, id)
}

func (s *studentServiceImpl) GetForm(ctx context.Context, id int64) (dto.StudentForm, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.StudentForm{}, err
	}
	return dto.NewStudentForm(student), nil
}

// parseStudentForm builds the persist shape from form values. Validation
// order: student number, names, email, dates, career and course
// selections, then the semester and grade rules.
func parseStudentForm(form dto.StudentForm) (*models.Student, error) {
	studentNumber, err := requiredString("the student number", form.StudentNumber)
	if err != nil {
		return nil, err
	}
	firstName, err := requiredString("the first name", form.FirstName)
	if err != nil {
		return nil, err
	}
	lastNamePaternal, err := requiredString("the paternal surname", form.LastNamePaternal)
	if err != nil {
		return nil, err
	}
	email, err := requiredString("the email", form.Email)
	if err != nil {
		return nil, err
	}
	birthDate, err := requiredDate("the birth date", form.BirthDate)
	if err != nil {
		return nil, err
	}
	enrollmentDate, err := requiredDate("the enrollment date", form.EnrollmentDate)
	if err != nil {
		return nil, err
	}
	careerID, err := requiredID("the career", form.CareerID)
	if err != nil {
		return nil, err
	}
	courseID, err := requiredID("the course", form.CourseID)
	if err != nil {
		return nil, err
	}
	semester, err := semesterValue(form.CurrentSemester)
	if err != nil {
		return nil, err
	}
	grade, err := gradeValue(form.AverageGrade)
	if err != nil {
		return nil, err
	}
	status, err := enumValue("the student status", form.Status, models.StudentStatusActive, models.StudentStatuses)
	if err != nil {
		return nil, err
	}

	return &models.Student{
		StudentNumber:    studentNumber,
		FirstName:        firstName,
		LastNamePaternal: lastNamePaternal,
		LastNameMaternal: optionalString(form.LastNameMaternal),
		Email:            email,
		Phone:            optionalString(form.Phone),
		BirthDate:        birthDate,
		EnrollmentDate:   enrollmentDate,
		CareerID:         careerID,
		CourseID:         courseID,
		CurrentSemester:  semester,
		AverageGrade:     grade,
		Status:           status,
	}, nil
}

func (s *studentServiceImpl) Create(ctx context.Context, form dto.StudentForm) (*models.Student, error) {
	student, err := parseStudentForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) Update(ctx context.Context, id int64, form dto.StudentForm) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}

	student, err := parseStudentForm(form)
	if err != nil {
		return nil, err
	}
	student.ID = id

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}
	return s.students.Delete(ctx, id)
}

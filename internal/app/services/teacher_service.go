package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

// TeacherStore is the data access the teacher service depends on.
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// TeacherListQuery carries the list filters of the teachers screen.
type TeacherListQuery struct {
	Search string
	AreaID string
}

// TeacherService defines the interface for teacher operations
type TeacherService interface {
	List(ctx context.Context, query TeacherListQuery) ([]*models.Teacher, int, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetForm(ctx context.Context, id int64) (dto.TeacherForm, error)
	Create(ctx context.Context, form dto.TeacherForm) (*models.Teacher, error)
	Update(ctx context.Context, id int64, form dto.TeacherForm) (*models.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

type teacherServiceImpl struct {
	teachers TeacherStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers TeacherStore) TeacherService {
	return &teacherServiceImpl{teachers: teachers}
}

// FilterTeachers reduces the full teacher list by the query. Pure function
// over its inputs. The area filter matches on the scalar area id.
func FilterTeachers(teachers []*models.Teacher, query TeacherListQuery) []*models.Teacher {
	term := normalizeSearchTerm(query.Search)

	filtered := []*models.Teacher{}
	for _, teacher := range teachers {
		matchSearch := searchMatches(term,
			teacher.FullName(),
			strconv.FormatInt(teacher.ID, 10),
			teacher.Email,
			teacher.AreaName(),
		)
		if matchSearch && filterMatches(query.AreaID, strconv.FormatInt(teacher.AreaID, 10)) {
			filtered = append(filtered, teacher)
		}
	}
	return filtered
}

func (s *teacherServiceImpl) List(ctx context.Context, query TeacherListQuery) ([]*models.Teacher, int, error) {
	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving teachers: %w", err)
	}
	return FilterTeachers(teachers, query), len(teachers), nil
}

func (s *teacherServiceImpl) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid teacher ID")
	}
	return s.teachers.GetByID(ctx, id)
}

func (s *teacherServiceImpl) GetForm(ctx context.Context, id int64) (dto.TeacherForm, error) {
	teacher, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.TeacherForm{}, err
	}
	return dto.NewTeacherForm(teacher), nil
}

// parseTeacherForm builds the persist shape from form values. Validation
// order: names, email, area, academic level; optional fields last.
func parseTeacherForm(form dto.TeacherForm) (*models.Teacher, error) {
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
	areaID, err := requiredID("the academic area", form.AreaID)
	if err != nil {
		return nil, err
	}
	level, err := requiredString("the academic level", form.AcademicLevel)
	if err != nil {
		return nil, err
	}
	hireDate, err := optionalDate("the hire date", form.HireDate)
	if err != nil {
		return nil, err
	}

	return &models.Teacher{
		FirstName:        firstName,
		LastNamePaternal: lastNamePaternal,
		LastNameMaternal: optionalString(form.LastNameMaternal),
		Email:            email,
		Phone:            optionalString(form.Phone),
		HireDate:         hireDate,
		AreaID:           areaID,
		AcademicLevel:    level,
	}, nil
}

func (s *teacherServiceImpl) Create(ctx context.Context, form dto.TeacherForm) (*models.Teacher, error) {
	teacher, err := parseTeacherForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherServiceImpl) Update(ctx context.Context, id int64, form dto.TeacherForm) (*models.Teacher, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid teacher ID")
	}

	teacher, err := parseTeacherForm(form)
	if err != nil {
		return nil, err
	}
	teacher.ID = id

	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

func (s *teacherServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid teacher ID")
	}
	return s.teachers.Delete(ctx, id)
}

package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

// CourseStore is the data access the course service depends on.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// CourseListQuery carries the list filters of the courses screen.
type CourseListQuery struct {
	Search   string
	Level    string
	Modality string
	Status   string
}

// CourseService defines the interface for course operations
type CourseService interface {
	List(ctx context.Context, query CourseListQuery) ([]*models.Course, int, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetForm(ctx context.Context, id int64) (dto.CourseForm, error)
	Create(ctx context.Context, form dto.CourseForm) (*models.Course, error)
	Update(ctx context.Context, id int64, form dto.CourseForm) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type courseServiceImpl struct {
	courses CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses CourseStore) CourseService {
	return &courseServiceImpl{courses: courses}
}

// FilterCourses reduces the full course list by the query. Pure function
// over its inputs.
func FilterCourses(courses []*models.Course, query CourseListQuery) []*models.Course {
	term := normalizeSearchTerm(query.Search)

	filtered := []*models.Course{}
	for _, course := range courses {
		matchSearch := searchMatches(term,
			course.Name,
			strconv.FormatInt(course.ID, 10),
		)
		if matchSearch &&
			filterMatches(query.Level, course.Level) &&
			filterMatches(query.Modality, course.Modality) &&
			filterMatches(query.Status, course.Status) {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

func (s *courseServiceImpl) List(ctx context.Context, query CourseListQuery) ([]*models.Course, int, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving courses: %w", err)
	}
	return FilterCourses(courses, query), len(courses), nil
}

func (s *courseServiceImpl) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}
	return s.courses.GetByID(ctx, id)
}

func (s *courseServiceImpl) GetForm(ctx context.Context, id int64) (dto.CourseForm, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.CourseForm{}, err
	}
	return dto.NewCourseForm(course), nil
}

// parseCourseForm builds the persist shape from form values. Only the name
// is strictly required; the remaining fields are optional or default to
// their enum's first value.
func parseCourseForm(form dto.CourseForm) (*models.Course, error) {
	name, err := requiredString("the course name", form.Name)
	if err != nil {
		return nil, err
	}
	level, err := enumValue("the course level", form.Level, models.CourseLevelDiploma, models.CourseLevels)
	if err != nil {
		return nil, err
	}
	modality, err := enumValue("the course modality", form.Modality, models.CourseModalityInPerson, models.CourseModalities)
	if err != nil {
		return nil, err
	}
	durationWeeks, err := optionalPositiveInt("the duration in weeks", form.DurationWeeks)
	if err != nil {
		return nil, err
	}
	credits, err := optionalPositiveInt("the credits", form.Credits)
	if err != nil {
		return nil, err
	}
	maxCapacity, err := optionalPositiveInt("the maximum capacity", form.MaxCapacity)
	if err != nil {
		return nil, err
	}
	status, err := enumValue("the course status", form.Status, models.CourseStatusActive, models.CourseStatuses)
	if err != nil {
		return nil, err
	}
	areaID, err := optionalID("the academic area", form.AreaID)
	if err != nil {
		return nil, err
	}
	teacherID, err := optionalID("the teacher", form.TeacherID)
	if err != nil {
		return nil, err
	}

	return &models.Course{
		Name:          name,
		Level:         level,
		Modality:      modality,
		DurationWeeks: durationWeeks,
		Credits:       credits,
		MaxCapacity:   maxCapacity,
		Status:        status,
		AreaID:        areaID,
		TeacherID:     teacherID,
	}, nil
}

func (s *courseServiceImpl) Create(ctx context.Context, form dto.CourseForm) (*models.Course, error) {
	course, err := parseCourseForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseServiceImpl) Update(ctx context.Context, id int64, form dto.CourseForm) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid course ID")
	}

	course, err := parseCourseForm(form)
	if err != nil {
		return nil, err
	}
	course.ID = id

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid course ID")
	}
	return s.courses.Delete(ctx, id)
}

package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

// CareerStore is the data access the career service depends on.
type CareerStore interface {
	Create(ctx context.Context, career *models.Career) error
	GetByID(ctx context.Context, id int64) (*models.Career, error)
	GetAll(ctx context.Context) ([]*models.Career, error)
	Update(ctx context.Context, career *models.Career) error
	Delete(ctx context.Context, id int64) error
}

// CareerListQuery carries the list filters of the careers screen.
type CareerListQuery struct {
	Search string
	Level  string
	Status string
}

// CareerService defines the interface for career operations
type CareerService interface {
	List(ctx context.Context, query CareerListQuery) ([]*models.Career, int, error)
	GetByID(ctx context.Context, id int64) (*models.Career, error)
	GetForm(ctx context.Context, id int64) (dto.CareerForm, error)
	Create(ctx context.Context, form dto.CareerForm) (*models.Career, error)
	Update(ctx context.Context, id int64, form dto.CareerForm) (*models.Career, error)
	Delete(ctx context.Context, id int64) error
}

type careerServiceImpl struct {
	careers CareerStore
}

// NewCareerService creates a new career service instance
func NewCareerService(careers CareerStore) CareerService {
	return &careerServiceImpl{careers: careers}
}

// FilterCareers reduces the full career list by the query. Pure function
// over its inputs; the empty search plus "all" filters returns the rows
// unchanged.
func FilterCareers(careers []*models.Career, query CareerListQuery) []*models.Career {
	term := normalizeSearchTerm(query.Search)

	filtered := []*models.Career{}
	for _, career := range careers {
		matchSearch := searchMatches(term,
			career.Name,
			strconv.FormatInt(career.ID, 10),
			career.AreaName(),
			career.Status,
		)
		if matchSearch &&
			filterMatches(query.Level, career.AcademicLevel) &&
			filterMatches(query.Status, career.Status) {
			filtered = append(filtered, career)
		}
	}
	return filtered
}

func (s *careerServiceImpl) List(ctx context.Context, query CareerListQuery) ([]*models.Career, int, error) {
	careers, err := s.careers.GetAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving careers: %w", err)
	}
	return FilterCareers(careers, query), len(careers), nil
}

func (s *careerServiceImpl) GetByID(ctx context.Context, id int64) (*models.Career, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid career ID")
	}
	return s.careers.GetByID(ctx, id)
}

func (s *careerServiceImpl) GetForm(ctx context.Context, id int64) (dto.CareerForm, error) {
	career, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.CareerForm{}, err
	}
	return dto.NewCareerForm(career), nil
}

// parseCareerForm builds the persist shape from form values. Validation
// order: required presence first, then numeric ranges, failing fast.
func parseCareerForm(form dto.CareerForm) (*models.Career, error) {
	name, err := requiredString("the career name", form.Name)
	if err != nil {
		return nil, err
	}
	level, err := requiredString("the academic level", form.AcademicLevel)
	if err != nil {
		return nil, err
	}
	areaID, err := requiredID("the academic area", form.AreaID)
	if err != nil {
		return nil, err
	}
	duration, err := requiredPositiveInt("the duration in semesters", form.DurationSemesters)
	if err != nil {
		return nil, err
	}
	credits, err := requiredPositiveInt("the total credits", form.TotalCredits)
	if err != nil {
		return nil, err
	}
	status, err := enumValue("the career status", form.Status, models.CareerStatusActive, models.CareerStatuses)
	if err != nil {
		return nil, err
	}

	return &models.Career{
		Name:              name,
		AcademicLevel:     level,
		DurationSemesters: duration,
		TotalCredits:      credits,
		Status:            status,
		AreaID:            areaID,
	}, nil
}

func (s *careerServiceImpl) Create(ctx context.Context, form dto.CareerForm) (*models.Career, error) {
	career, err := parseCareerForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.careers.Create(ctx, career); err != nil {
		return nil, err
	}
	return career, nil
}

func (s *careerServiceImpl) Update(ctx context.Context, id int64, form dto.CareerForm) (*models.Career, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid career ID")
	}

	career, err := parseCareerForm(form)
	if err != nil {
		return nil, err
	}
	career.ID = id

	if err := s.careers.Update(ctx, career); err != nil {
		return nil, err
	}
	return career, nil
}

func (s *careerServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid career ID")
	}
	return s.careers.Delete(ctx, id)
}

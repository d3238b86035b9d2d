package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

// AreaStore is the data access the area service depends on.
type AreaStore interface {
	Create(ctx context.Context, area *models.AcademicArea) error
	GetByID(ctx context.Context, id int64) (*models.AcademicArea, error)
	GetAll(ctx context.Context) ([]*models.AcademicArea, error)
	Update(ctx context.Context, area *models.AcademicArea) error
	Delete(ctx context.Context, id int64) error
}

// AreaListQuery carries the list filters of the areas screen.
type AreaListQuery struct {
	Search string
}

// AreaService defines the interface for academic area operations
type AreaService interface {
	List(ctx context.Context, query AreaListQuery) ([]*models.AcademicArea, int, error)
	GetByID(ctx context.Context, id int64) (*models.AcademicArea, error)
	GetForm(ctx context.Context, id int64) (dto.AreaForm, error)
	Create(ctx context.Context, form dto.AreaForm) (*models.AcademicArea, error)
	Update(ctx context.Context, id int64, form dto.AreaForm) (*models.AcademicArea, error)
	Delete(ctx context.Context, id int64) error
}

type areaServiceImpl struct {
	areas AreaStore
}

// NewAreaService creates a new area service instance
func NewAreaService(areas AreaStore) AreaService {
	return &areaServiceImpl{areas: areas}
}

// FilterAreas reduces the full area list by the query. Pure function over
// its inputs; the empty search returns the rows unchanged.
func FilterAreas(areas []*models.AcademicArea, query AreaListQuery) []*models.AcademicArea {
	term := normalizeSearchTerm(query.Search)
	if term == "" {
		return areas
	}

	filtered := []*models.AcademicArea{}
	for _, area := range areas {
		if searchMatches(term, area.Name, strconv.FormatInt(area.ID, 10)) {
			filtered = append(filtered, area)
		}
	}
	return filtered
}

func (s *areaServiceImpl) List(ctx context.Context, query AreaListQuery) ([]*models.AcademicArea, int, error) {
	areas, err := s.areas.GetAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving academic areas: %w", err)
	}
	return FilterAreas(areas, query), len(areas), nil
}

func (s *areaServiceImpl) GetByID(ctx context.Context, id int64) (*models.AcademicArea, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid area ID")
	}
	return s.areas.GetByID(ctx, id)
}

func (s *areaServiceImpl) GetForm(ctx context.Context, id int64) (dto.AreaForm, error) {
	area, err := s.GetByID(ctx, id)
	if err != nil {
		return dto.AreaForm{}, err
	}
	return dto.NewAreaForm(area), nil
}

// parseAreaForm builds the persist shape from form values.
func parseAreaForm(form dto.AreaForm) (*models.AcademicArea, error) {
	name, err := requiredString("the area name", form.Name)
	if err != nil {
		return nil, err
	}
	return &models.AcademicArea{Name: name}, nil
}

func (s *areaServiceImpl) Create(ctx context.Context, form dto.AreaForm) (*models.AcademicArea, error) {
	area, err := parseAreaForm(form)
	if err != nil {
		return nil, err
	}

	if err := s.areas.Create(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *areaServiceImpl) Update(ctx context.Context, id int64, form dto.AreaForm) (*models.AcademicArea, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid area ID")
	}

	area, err := parseAreaForm(form)
	if err != nil {
		return nil, err
	}
	area.ID = id

	if err := s.areas.Update(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *areaServiceImpl) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid area ID")
	}
	return s.areas.Delete(ctx, id)
}

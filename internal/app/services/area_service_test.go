package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/app/repositories"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

type fakeAreaStore struct {
	areas  map[int64]*models.AcademicArea
	nextID int64
}

func newFakeAreaStore() *fakeAreaStore {
	return &fakeAreaStore{areas: map[int64]*models.AcademicArea{}, nextID: 1}
}

func (f *fakeAreaStore) Create(_ context.Context, area *models.AcademicArea) error {
	for _, existing := range f.areas {
		if existing.Name == area.Name {
			return apperrors.ErrAreaNameExists
		}
	}
	area.ID = f.nextID
	f.nextID++
	copied := *area
	f.areas[area.ID] = &copied
	return nil
}

func (f *fakeAreaStore) GetByID(_ context.Context, id int64) (*models.AcademicArea, error) {
	area, ok := f.areas[id]
	if !ok {
		return nil, apperrors.ErrAreaNotFound
	}
	return area, nil
}

func (f *fakeAreaStore) GetAll(_ context.Context) ([]*models.AcademicArea, error) {
	out := []*models.AcademicArea{}
	for id := int64(1); id < f.nextID; id++ {
		if area, ok := f.areas[id]; ok {
			out = append(out, area)
		}
	}
	return out, nil
}

func (f *fakeAreaStore) Update(_ context.Context, area *models.AcademicArea) error {
	if _, ok := f.areas[area.ID]; !ok {
		return apperrors.ErrAreaNotFound
	}
	copied := *area
	f.areas[area.ID] = &copied
	return nil
}

func (f *fakeAreaStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.areas[id]; !ok {
		return apperrors.ErrAreaNotFound
	}
	delete(f.areas, id)
	return nil
}

func TestAreaServiceCreate(t *testing.T) {
	svc := NewAreaService(newFakeAreaStore())

	area, err := svc.Create(context.Background(), dto.AreaForm{Name: "  Health Sciences "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), area.ID)
	assert.Equal(t, "Health Sciences", area.Name)

	_, err = svc.Create(context.Background(), dto.AreaForm{Name: "   "})
	assertValidationError(t, err, "the area name is required")
}

func TestAreaServiceCreateDuplicate(t *testing.T) {
	svc := NewAreaService(newFakeAreaStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.AreaForm{Name: "Health Sciences"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, dto.AreaForm{Name: "Health Sciences"})
	assert.ErrorIs(t, err, apperrors.ErrAreaNameExists)
}

func TestAreaServiceGetForm(t *testing.T) {
	svc := NewAreaService(newFakeAreaStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.AreaForm{Name: "Languages"})
	require.NoError(t, err)

	form, err := svc.GetForm(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.AreaForm{Name: "Languages"}, form)

	_, err = svc.GetForm(ctx, 99)
	assert.ErrorIs(t, err, apperrors.ErrAreaNotFound)
}

func TestAreaServiceList(t *testing.T) {
	svc := NewAreaService(newFakeAreaStore())
	ctx := context.Background()

	for _, name := range []string{"Engineering and Technology", "Health Sciences", "Arts and Humanities"} {
		_, err := svc.Create(ctx, dto.AreaForm{Name: name})
		require.NoError(t, err)
	}

	rows, total, err := svc.List(ctx, AreaListQuery{Search: "sciences"})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Health Sciences", rows[0].Name)
}

func TestAreaServiceInvalidID(t *testing.T) {
	svc := NewAreaService(newFakeAreaStore())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 0)
	assertValidationError(t, err, "invalid area ID")

	_, err = svc.Update(ctx, -1, dto.AreaForm{Name: "X"})
	assertValidationError(t, err, "invalid area ID")

	err = svc.Delete(ctx, 0)
	assertValidationError(t, err, "invalid area ID")
}

var _ AreaStore = (*repositories.AreaRepository)(nil)
var _ CourseStore = (*repositories.CourseRepository)(nil)
var _ TeacherStore = (*repositories.TeacherRepository)(nil)
var _ DashboardStore = (*repositories.DashboardRepository)(nil)
var _ CourseLookupStore = (*repositories.CourseRepository)(nil)

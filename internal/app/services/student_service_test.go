package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/models/dto"
	"github.com/fergood-2703/SIA-FCP/internal/app/repositories"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[int64]*models.Student{}, nextID: 1}
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	student.ID = f.nextID
	f.nextID++
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	out := []*models.Student{}
	for id := int64(1); id < f.nextID; id++ {
		if student, ok := f.students[id]; ok {
			out = append(out, student)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	copied := *student
	f.students[student.ID] = &copied
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func validStudentForm() dto.StudentForm {
	return dto.StudentForm{
		StudentNumber:    "A2024-101",
		FirstName:        "Ana",
		LastNamePaternal: "Lopez",
		Email:            "ana.lopez@campus.edu",
		BirthDate:        "2004-03-12",
		EnrollmentDate:   "2024-08-19",
		CareerID:         "1",
		CourseID:         "2",
		CurrentSemester:  "1",
		Status:           models.StudentStatusActive,
	}
}

func TestStudentServiceCreate(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	student, err := svc.Create(context.Background(), validStudentForm())
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.ID)
	assert.Equal(t, "A2024-101", student.StudentNumber)
	assert.Equal(t, int64(1), student.CareerID)
	assert.Equal(t, int64(2), student.CourseID)
	assert.Equal(t, 1, student.CurrentSemester)
	assert.Nil(t, student.AverageGrade)
	assert.Nil(t, student.LastNameMaternal)
	assert.Nil(t, student.Phone)
}

func TestStudentServiceValidationOrder(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	form := dto.StudentForm{}
	_, err := svc.Create(ctx, form)
	assertValidationError(t, err, "the student number is required")

	form.StudentNumber = "A2024-101"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "the first name is required")

	form.FirstName = "Ana"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "the paternal surname is required")

	form.LastNamePaternal = "Lopez"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "the email is required")

	form.Email = "ana.lopez@campus.edu"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "the birth date is required")

	form.BirthDate = "2004-03-12"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "the enrollment date is required")

	form.EnrollmentDate = "2024-08-19"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "the career is required")

	form.CareerID = "1"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "the course is required")

	form.CourseID = "2"
	_, err = svc.Create(ctx, form)
	require.NoError(t, err)
}

func TestStudentServiceSemesterAndGradeRules(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	form := validStudentForm()
	form.CurrentSemester = ""
	student, err := svc.Create(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, 1, student.CurrentSemester)

	form = validStudentForm()
	form.AverageGrade = "88.4"
	student, err = svc.Create(ctx, form)
	require.NoError(t, err)
	require.NotNil(t, student.AverageGrade)
	assert.Equal(t, 88.4, *student.AverageGrade)

	form.AverageGrade = "101"
	_, err = svc.Create(ctx, form)
	assertValidationError(t, err, "average grade must be between 0 and 100")
}

func TestStudentServiceFormRoundTrip(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	ctx := context.Background()

	original := validStudentForm()
	original.LastNameMaternal = "Diaz"
	original.Phone = "555-0134"
	original.AverageGrade = "91.25"
	original.CurrentSemester = "3"

	created, err := svc.Create(ctx, original)
	require.NoError(t, err)

	form, err := svc.GetForm(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, original, form)
}

func TestStudentServiceEmptyForm(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	form := dto.EmptyStudentForm(now)

	assert.Equal(t, "2026-08-30", form.EnrollmentDate)
	assert.Equal(t, "1", form.CurrentSemester)
	assert.Equal(t, models.StudentStatusActive, form.Status)
	assert.Empty(t, form.StudentNumber)
	assert.Empty(t, form.AverageGrade)
}

var _ StudentStore = (*repositories.StudentRepository)(nil)

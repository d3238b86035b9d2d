package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/dberrors"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/helpers"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/logger"
)

// Unique constraint names on the students table, used to tell the two
// uniqueness conflicts apart.
const (
	studentNumberConstraint = "students_student_number_key"
	studentEmailConstraint  = "students_email_key"
)

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *StudentRepository) selectWithRelations() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.student_number", "s.first_name", "s.last_name_paternal", "s.last_name_maternal",
		"s.email", "s.phone", "s.birth_date", "s.enrollment_date",
		"s.career_id", "s.course_id", "s.current_semester", "s.average_grade", "s.status",
		"ca.id", "ca.name",
		"co.id", "co.name",
	).
		From("students s").
		LeftJoin("careers ca ON ca.id = s.career_id").
		LeftJoin("courses co ON co.id = s.course_id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	var lastNameMaternal, phone sql.NullString
	var averageGrade sql.NullFloat64
	var careerID, courseID sql.NullInt64
	var careerName, courseName sql.NullString

	err := row.Scan(
		&student.ID, &student.StudentNumber, &student.FirstName, &student.LastNamePaternal, &lastNameMaternal,
		&student.Email, &phone, &student.BirthDate, &student.EnrollmentDate,
		&student.CareerID, &student.CourseID, &student.CurrentSemester, &averageGrade, &student.Status,
		&careerID, &careerName,
		&courseID, &courseName,
	)
	if err != nil {
		return nil, err
	}

	if lastNameMaternal.Valid {
		student.LastNameMaternal = &lastNameMaternal.String
	}
	if phone.Valid {
		student.Phone = &phone.String
	}
	if averageGrade.Valid {
		student.AverageGrade = &averageGrade.Float64
	}
	if careerID.Valid {
		student.Career = &models.Career{ID: careerID.Int64, Name: careerName.String}
	}
	if courseID.Valid {
		student.Course = &models.Course{ID: courseID.Int64, Name: courseName.String}
	}

	return student, nil
}

func studentValues(student *models.Student) map[string]interface{} {
	return map[string]interface{}{
		"student_number":     student.StudentNumber,
		"first_name":         student.FirstName,
		"last_name_paternal": student.LastNamePaternal,
		"last_name_maternal": helpers.GetNullString(student.LastNameMaternal),
		"email":              student.Email,
		"phone":              helpers.GetNullString(student.Phone),
		"birth_date":         student.BirthDate,
		"enrollment_date":    student.EnrollmentDate,
		"career_id":          student.CareerID,
		"course_id":          student.CourseID,
		"current_semester":   student.CurrentSemester,
		"average_grade":      helpers.GetNullFloat64(student.AverageGrade),
		"status":             student.Status,
	}
}

// classifyStudentError maps database conflicts to the student sentinels.
func classifyStudentError(err error) error {
	switch {
	case dberrors.IsUniqueConstraintViolation(err, studentNumberConstraint):
		return apperrors.ErrStudentNumberExists
	case dberrors.IsUniqueConstraintViolation(err, studentEmailConstraint):
		return apperrors.ErrStudentEmailExists
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrStudentUniqueViolation
	case dberrors.IsForeignKeyViolation(err):
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			"the referenced career or course does not exist")
	}
	return nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Insert("students").
		SetMap(studentValues(student)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&student.ID)
	if err != nil {
		if classified := classifyStudentError(err); classified != nil {
			return classified
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID with the embedded career and course
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query, args, err := r.selectWithRelations().
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students with embedded relations in ascending-id order
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query, args, err := r.selectWithRelations().
		OrderBy("s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Update replaces the editable field set of an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query, args, err := r.sb.Update("students").
		SetMap(studentValues(student)).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if classified := classifyStudentError(err); classified != nil {
			return classified
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID. Nothing references students, so the
// delete is never blocked.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

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

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *TeacherRepository) selectWithArea() squirrel.SelectBuilder {
	return r.sb.Select(
		"t.id", "t.first_name", "t.last_name_paternal", "t.last_name_maternal",
		"t.email", "t.phone", "t.hire_date", "t.area_id", "t.academic_level",
		"a.id", "a.name",
	).
		From("teachers t").
		LeftJoin("academic_areas a ON a.id = t.area_id")
}

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	area := &models.AcademicArea{}
	var lastNameMaternal, phone sql.NullString
	var hireDate sql.NullTime

	err := row.Scan(
		&teacher.ID, &teacher.FirstName, &teacher.LastNamePaternal, &lastNameMaternal,
		&teacher.Email, &phone, &hireDate, &teacher.AreaID, &teacher.AcademicLevel,
		&area.ID, &area.Name,
	)
	if err != nil {
		return nil, err
	}

	if lastNameMaternal.Valid {
		teacher.LastNameMaternal = &lastNameMaternal.String
	}
	if phone.Valid {
		teacher.Phone = &phone.String
	}
	if hireDate.Valid {
		teacher.HireDate = &hireDate.Time
	}
	teacher.Area = area
	return teacher, nil
}

// Create inserts a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	var hireDate interface{}
	if teacher.HireDate != nil {
		hireDate = *teacher.HireDate
	}

	query, args, err := r.sb.Insert("teachers").
		Columns("first_name", "last_name_paternal", "last_name_maternal", "email", "phone", "hire_date", "area_id", "academic_level").
		Values(
			teacher.FirstName,
			teacher.LastNamePaternal,
			helpers.GetNullString(teacher.LastNameMaternal),
			teacher.Email,
			helpers.GetNullString(teacher.Phone),
			hireDate,
			teacher.AreaID,
			teacher.AcademicLevel,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&teacher.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTeacherEmailExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAreaNotFound
		}
		logger.Error().Err(err).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher by ID with the embedded area
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query, args, err := r.selectWithArea().
		Where(squirrel.Eq{"t.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	teacher, err := scanTeacher(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by ID: %w", err)
	}

	return teacher, nil
}

// GetAll retrieves all teachers with embedded areas in ascending-id order
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query, args, err := r.selectWithArea().
		OrderBy("t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all teachers query")
		return nil, fmt.Errorf("error querying teachers: %w", err)
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// Update replaces the editable field set of an existing teacher
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	var hireDate interface{}
	if teacher.HireDate != nil {
		hireDate = *teacher.HireDate
	}

	query, args, err := r.sb.Update("teachers").
		SetMap(map[string]interface{}{
			"first_name":         teacher.FirstName,
			"last_name_paternal": teacher.LastNamePaternal,
			"last_name_maternal": helpers.GetNullString(teacher.LastNameMaternal),
			"email":              teacher.Email,
			"phone":              helpers.GetNullString(teacher.Phone),
			"hire_date":          hireDate,
			"area_id":            teacher.AreaID,
			"academic_level":     teacher.AcademicLevel,
		}).
		Where(squirrel.Eq{"id": teacher.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTeacherEmailExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAreaNotFound
		}
		logger.Error().Err(err).Int64("teacherID", teacher.ID).Msg("Error executing update teacher query")
		return fmt.Errorf("error updating teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

// Delete deletes a teacher by ID. Deletes are blocked while courses are
// still assigned to the teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Select("COUNT(*)").
		From("courses").
		Where(squirrel.Eq{"teacher_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build count courses query: %w", err)
	}

	var courses int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&courses); err != nil {
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error counting assigned courses")
		return fmt.Errorf("error counting assigned courses: %w", err)
	}

	if courses > 0 {
		return apperrors.NewCustomError(apperrors.ErrTeacherHasRelations,
			fmt.Sprintf("cannot delete: %d courses reference this teacher", courses))
	}

	query, args, err = r.sb.Delete("teachers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrTeacherHasRelations
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error executing delete teacher query")
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}

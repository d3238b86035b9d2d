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

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *CourseRepository) selectWithRelations() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.name", "c.level", "c.modality", "c.duration_weeks",
		"c.credits", "c.max_capacity", "c.status", "c.area_id", "c.teacher_id",
		"a.id", "a.name",
		"t.id", "t.first_name", "t.last_name_paternal", "t.last_name_maternal",
	).
		From("courses c").
		LeftJoin("academic_areas a ON a.id = c.area_id").
		LeftJoin("teachers t ON t.id = c.teacher_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	var durationWeeks, credits, maxCapacity sql.NullInt64
	var areaID, teacherID sql.NullInt64
	var joinedAreaID, joinedTeacherID sql.NullInt64
	var areaName, teacherFirstName, teacherLastNamePaternal, teacherLastNameMaternal sql.NullString

	err := row.Scan(
		&course.ID, &course.Name, &course.Level, &course.Modality, &durationWeeks,
		&credits, &maxCapacity, &course.Status, &areaID, &teacherID,
		&joinedAreaID, &areaName,
		&joinedTeacherID, &teacherFirstName, &teacherLastNamePaternal, &teacherLastNameMaternal,
	)
	if err != nil {
		return nil, err
	}

	if durationWeeks.Valid {
		v := int(durationWeeks.Int64)
		course.DurationWeeks = &v
	}
	if credits.Valid {
		v := int(credits.Int64)
		course.Credits = &v
	}
	if maxCapacity.Valid {
		v := int(maxCapacity.Int64)
		course.MaxCapacity = &v
	}
	if areaID.Valid {
		course.AreaID = &areaID.Int64
	}
	if teacherID.Valid {
		course.TeacherID = &teacherID.Int64
	}
	if joinedAreaID.Valid {
		course.Area = &models.AcademicArea{ID: joinedAreaID.Int64, Name: areaName.String}
	}
	if joinedTeacherID.Valid {
		teacher := &models.Teacher{
			ID:               joinedTeacherID.Int64,
			FirstName:        teacherFirstName.String,
			LastNamePaternal: teacherLastNamePaternal.String,
		}
		if teacherLastNameMaternal.Valid {
			teacher.LastNameMaternal = &teacherLastNameMaternal.String
		}
		course.Teacher = teacher
	}

	return course, nil
}

func courseInsertValues(course *models.Course) map[string]interface{} {
	var durationWeeks, credits, maxCapacity *int64
	if course.DurationWeeks != nil {
		v := int64(*course.DurationWeeks)
		durationWeeks = &v
	}
	if course.Credits != nil {
		v := int64(*course.Credits)
		credits = &v
	}
	if course.MaxCapacity != nil {
		v := int64(*course.MaxCapacity)
		maxCapacity = &v
	}

	return map[string]interface{}{
		"name":           course.Name,
		"level":          course.Level,
		"modality":       course.Modality,
		"duration_weeks": helpers.GetNullInt64(durationWeeks),
		"credits":        helpers.GetNullInt64(credits),
		"max_capacity":   helpers.GetNullInt64(maxCapacity),
		"status":         course.Status,
		"area_id":        helpers.GetNullInt64(course.AreaID),
		"teacher_id":     helpers.GetNullInt64(course.TeacherID),
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Insert("courses").
		SetMap(courseInsertValues(course)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, query, args...).Scan(&course.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				"the referenced area or teacher does not exist")
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID with its embedded area and teacher
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query, args, err := r.selectWithRelations().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAll retrieves all courses with embedded relations in ascending-id order
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query, args, err := r.selectWithRelations().
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	return r.queryCourses(ctx, query, args)
}

// GetRecent retrieves the latest courses by descending id
func (r *CourseRepository) GetRecent(ctx context.Context, limit uint64) ([]*models.Course, error) {
	query, args, err := r.selectWithRelations().
		OrderBy("c.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get recent courses query: %w", err)
	}

	return r.queryCourses(ctx, query, args)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args []interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing courses query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetNamesByIDs resolves course names for the given id set
func (r *CourseRepository) GetNamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := map[int64]string{}
	if len(ids) == 0 {
		return names, nil
	}

	query, args, err := r.sb.Select("id", "name").
		From("courses").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course names query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course names query")
		return nil, fmt.Errorf("error querying course names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error scanning course name row: %w", err)
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course name rows: %w", err)
	}

	return names, nil
}

// Update replaces the editable field set of an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Update("courses").
		SetMap(courseInsertValues(course)).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed,
				"the referenced area or teacher does not exist")
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Deletes are blocked while students are
// still enrolled in the course.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Select("COUNT(*)").
		From("students").
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build count students query: %w", err)
	}

	var students int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&students); err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error counting enrolled students")
		return fmt.Errorf("error counting enrolled students: %w", err)
	}

	if students > 0 {
		return apperrors.NewCustomError(apperrors.ErrCourseHasRelations,
			fmt.Sprintf("cannot delete: %d students are enrolled in this course", students))
	}

	query, args, err = r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasRelations
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/logger"
)

// StudentChartRow is the minimal student projection the dashboard
// aggregations run over: status, course reference and embedded career name.
type StudentChartRow struct {
	ID         int64
	Status     string
	CourseID   int64
	CareerName string
}

// DashboardRepository serves the count and chart-source queries of the
// dashboard page.
type DashboardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Count returns the row count of a table, optionally restricted by
// exact-match filters.
func (r *DashboardRepository) Count(ctx context.Context, table string, filter squirrel.Eq) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From(table)
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing count query")
		return 0, fmt.Errorf("error counting rows in %s: %w", table, err)
	}

	return count, nil
}

// CountCourses returns the total number of courses
func (r *DashboardRepository) CountCourses(ctx context.Context) (int64, error) {
	return r.Count(ctx, "courses", nil)
}

// CountActiveCourses returns the number of courses with active status
func (r *DashboardRepository) CountActiveCourses(ctx context.Context) (int64, error) {
	return r.Count(ctx, "courses", squirrel.Eq{"status": models.CourseStatusActive})
}

// CountTeachers returns the total number of teachers
func (r *DashboardRepository) CountTeachers(ctx context.Context) (int64, error) {
	return r.Count(ctx, "teachers", nil)
}

// CountAreas returns the total number of academic areas
func (r *DashboardRepository) CountAreas(ctx context.Context) (int64, error) {
	return r.Count(ctx, "academic_areas", nil)
}

// CountStudents returns the total number of students
func (r *DashboardRepository) CountStudents(ctx context.Context) (int64, error) {
	return r.Count(ctx, "students", nil)
}

// CountCareers returns the total number of careers
func (r *DashboardRepository) CountCareers(ctx context.Context) (int64, error) {
	return r.Count(ctx, "careers", nil)
}

// GetStudentChartRows retrieves the full student list projected down to
// the fields the dashboard distributions group by.
func (r *DashboardRepository) GetStudentChartRows(ctx context.Context) ([]StudentChartRow, error) {
	query, args, err := r.sb.Select("s.id", "s.status", "s.course_id", "ca.name").
		From("students s").
		LeftJoin("careers ca ON ca.id = s.career_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student chart query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student chart query")
		return nil, fmt.Errorf("error querying student chart rows: %w", err)
	}
	defer rows.Close()

	chartRows := []StudentChartRow{}
	for rows.Next() {
		var row StudentChartRow
		var courseID sql.NullInt64
		var careerName sql.NullString
		if err := rows.Scan(&row.ID, &row.Status, &courseID, &careerName); err != nil {
			return nil, fmt.Errorf("error scanning student chart row: %w", err)
		}
		row.CourseID = courseID.Int64
		row.CareerName = careerName.String
		chartRows = append(chartRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student chart rows: %w", err)
	}

	return chartRows, nil
}

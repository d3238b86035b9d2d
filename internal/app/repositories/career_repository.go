package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/dberrors"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/logger"
)

// CareerRepository handles career database operations
type CareerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCareerRepository creates a new CareerRepository
func NewCareerRepository(db *pgxpool.Pool) *CareerRepository {
	return &CareerRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

func (r *CareerRepository) selectWithArea() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.name", "c.academic_level", "c.duration_semesters",
		"c.total_credits", "c.status", "c.area_id",
		"a.id", "a.name",
	).
		From("careers c").
		LeftJoin("academic_areas a ON a.id = c.area_id")
}

func scanCareer(row pgx.Row) (*models.Career, error) {
	career := &models.Career{}
	area := &models.AcademicArea{}
	err := row.Scan(
		&career.ID, &career.Name, &career.AcademicLevel, &career.DurationSemesters,
		&career.TotalCredits, &career.Status, &career.AreaID,
		&area.ID, &area.Name,
	)
	if err != nil {
		return nil, err
	}
	career.Area = area
	return career, nil
}

// Create inserts a new career
func (r *CareerRepository) Create(ctx context.Context, career *models.Career) error {
	sql, args, err := r.sb.Insert("careers").
		Columns("name", "academic_level", "duration_semesters", "total_credits", "status", "area_id").
		Values(career.Name, career.AcademicLevel, career.DurationSemesters, career.TotalCredits, career.Status, career.AreaID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create career query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&career.ID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAreaNotFound
		}
		logger.Error().Err(err).Msg("Error executing create career query")
		return fmt.Errorf("error creating career: %w", err)
	}

	return nil
}

// GetByID retrieves a career by ID with its embedded area
func (r *CareerRepository) GetByID(ctx context.Context, id int64) (*models.Career, error) {
	sql, args, err := r.selectWithArea().
		Where(squirrel.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get career query: %w", err)
	}

	career, err := scanCareer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCareerNotFound
		}
		logger.Error().Err(err).Int64("careerID", id).Msg("Error scanning career row")
		return nil, fmt.Errorf("error getting career by ID: %w", err)
	}

	return career, nil
}

// GetAll retrieves all careers with embedded areas in ascending-id order
func (r *CareerRepository) GetAll(ctx context.Context) ([]*models.Career, error) {
	sql, args, err := r.selectWithArea().
		OrderBy("c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all careers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all careers query")
		return nil, fmt.Errorf("error querying careers: %w", err)
	}
	defer rows.Close()

	careers := []*models.Career{}
	for rows.Next() {
		career, err := scanCareer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning career row: %w", err)
		}
		careers = append(careers, career)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating career rows: %w", err)
	}

	return careers, nil
}

// Update replaces the editable field set of an existing career
func (r *CareerRepository) Update(ctx context.Context, career *models.Career) error {
	sql, args, err := r.sb.Update("careers").
		SetMap(map[string]interface{}{
			"name":               career.Name,
			"academic_level":     career.AcademicLevel,
			"duration_semesters": career.DurationSemesters,
			"total_credits":      career.TotalCredits,
			"status":             career.Status,
			"area_id":            career.AreaID,
		}).
		Where(squirrel.Eq{"id": career.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update career query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAreaNotFound
		}
		logger.Error().Err(err).Int64("careerID", career.ID).Msg("Error executing update career query")
		return fmt.Errorf("error updating career: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCareerNotFound
	}

	return nil
}

// Delete deletes a career by ID. Deletes are blocked while students are
// still enrolled in the career.
func (r *CareerRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("students").
		Where(squirrel.Eq{"career_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build count students query: %w", err)
	}

	var students int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&students); err != nil {
		logger.Error().Err(err).Int64("careerID", id).Msg("Error counting enrolled students")
		return fmt.Errorf("error counting enrolled students: %w", err)
	}

	if students > 0 {
		return apperrors.NewCustomError(apperrors.ErrCareerHasRelations,
			fmt.Sprintf("cannot delete: %d students are enrolled in this career", students))
	}

	sql, args, err = r.sb.Delete("careers").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete career query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCareerHasRelations
		}
		logger.Error().Err(err).Int64("careerID", id).Msg("Error executing delete career query")
		return fmt.Errorf("error deleting career: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCareerNotFound
	}

	return nil
}

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

// AreaRepository handles academic area database operations
type AreaRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAreaRepository creates a new AreaRepository
func NewAreaRepository(db *pgxpool.Pool) *AreaRepository {
	return &AreaRepository{
		db: db,
		sb: newStatementBuilder(),
	}
}

// Create inserts a new academic area
func (r *AreaRepository) Create(ctx context.Context, area *models.AcademicArea) error {
	sql, args, err := r.sb.Insert("academic_areas").
		Columns("name").
		Values(area.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create area query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&area.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAreaNameExists
		}
		logger.Error().Err(err).Msg("Error executing create area query")
		return fmt.Errorf("error creating academic area: %w", err)
	}

	return nil
}

// GetByID retrieves an academic area by ID
func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*models.AcademicArea, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("academic_areas").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get area query: %w", err)
	}

	area := &models.AcademicArea{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&area.ID, &area.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAreaNotFound
		}
		logger.Error().Err(err).Int64("areaID", id).Msg("Error scanning area row")
		return nil, fmt.Errorf("error getting academic area by ID: %w", err)
	}

	return area, nil
}

// GetAll retrieves all academic areas in ascending-id order
func (r *AreaRepository) GetAll(ctx context.Context) ([]*models.AcademicArea, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("academic_areas").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all areas query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all areas query")
		return nil, fmt.Errorf("error querying academic areas: %w", err)
	}
	defer rows.Close()

	areas := []*models.AcademicArea{}
	for rows.Next() {
		area := &models.AcademicArea{}
		if err := rows.Scan(&area.ID, &area.Name); err != nil {
			return nil, fmt.Errorf("error scanning area row: %w", err)
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area rows: %w", err)
	}

	return areas, nil
}

// Update updates an existing academic area
func (r *AreaRepository) Update(ctx context.Context, area *models.AcademicArea) error {
	sql, args, err := r.sb.Update("academic_areas").
		Set("name", area.Name).
		Where(squirrel.Eq{"id": area.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update area query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAreaNameExists
		}
		logger.Error().Err(err).Int64("areaID", area.ID).Msg("Error executing update area query")
		return fmt.Errorf("error updating academic area: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAreaNotFound
	}

	return nil
}

// Delete deletes an academic area by ID. Deletes are blocked while careers,
// courses or teachers still reference the area.
func (r *AreaRepository) Delete(ctx context.Context, id int64) error {
	careers, err := r.countReferences(ctx, "careers", id)
	if err != nil {
		return err
	}
	courses, err := r.countReferences(ctx, "courses", id)
	if err != nil {
		return err
	}
	teachers, err := r.countReferences(ctx, "teachers", id)
	if err != nil {
		return err
	}

	if total := careers + courses + teachers; total > 0 {
		return apperrors.NewCustomError(apperrors.ErrAreaHasRelations,
			fmt.Sprintf("cannot delete: %d careers, %d courses and %d teachers reference this area", careers, courses, teachers))
	}

	sql, args, err := r.sb.Delete("academic_areas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete area query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		// Dependent rows may have appeared between the check and the delete.
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrAreaHasRelations
		}
		logger.Error().Err(err).Int64("areaID", id).Msg("Error executing delete area query")
		return fmt.Errorf("error deleting academic area: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAreaNotFound
	}

	return nil
}

// countReferences counts rows in table whose area_id references the area.
func (r *AreaRepository) countReferences(ctx context.Context, table string, areaID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"area_id": areaID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count references query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("table", table).Int64("areaID", areaID).Msg("Error counting area references")
		return 0, fmt.Errorf("error counting area references in %s: %w", table, err)
	}

	return count, nil
}

package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/fergood-2703/SIA-FCP/internal/app/models"
	"github.com/fergood-2703/SIA-FCP/internal/app/repositories"
	"github.com/fergood-2703/SIA-FCP/internal/pkg/apperrors"
)

// defaultAreas are created on first startup so the career, course and
// teacher forms have areas to select from.
var defaultAreas = []string{
	"Engineering and Technology",
	"Health Sciences",
	"Social Sciences",
	"Business and Administration",
	"Arts and Humanities",
}

// CreateDefaultData creates the default academic areas if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	areaRepo := repositories.NewAreaRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default academic areas...")
	var finalErr error

	for _, name := range defaultAreas {
		area := &models.AcademicArea{Name: name}
		err := areaRepo.Create(ctx, area)
		if err != nil && !errors.Is(err, apperrors.ErrAreaNameExists) {
			lgr.Error().Err(err).Str("area", name).Msg("Error creating default academic area")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default academic areas are in place")
	}
	return finalErr
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres/generated"
)

// PeriodRepository implements usecase.PeriodRepository. Periods are owned by the
// accounting calendar and are read-only here.
type PeriodRepository struct {
	queries *generated.Queries
}

// NewPeriodRepository creates a new PeriodRepository.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepository {
	return newPeriodRepository(pool)
}

func newPeriodRepository(db generated.DBTX) *PeriodRepository {
	return &PeriodRepository{queries: generated.New(db)}
}

// GetCurrent returns the period flagged as current.
func (r *PeriodRepository) GetCurrent(ctx context.Context) (*domain.Period, error) {
	row, err := r.queries.GetCurrentPeriod(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPeriodNotFound
		}

		return nil, err
	}

	p := rowToPeriod(row)
	return &p, nil
}

// GetByYear returns the periods of a year ordered by period number.
func (r *PeriodRepository) GetByYear(ctx context.Context, year int) ([]domain.Period, error) {
	rows, err := r.queries.GetPeriodsByYear(ctx, int32(year))
	if err != nil {
		return nil, err
	}

	periods := make([]domain.Period, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, rowToPeriod(row))
	}

	return periods, nil
}

// GetByKey returns the period identified by (number, year).
func (r *PeriodRepository) GetByKey(ctx context.Context, number, year int) (*domain.Period, error) {
	row, err := r.queries.GetPeriodByKey(ctx, generated.GetPeriodByKeyParams{
		PeriodNum: int32(number),
		Year:      int32(year),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPeriodNotFound
		}

		return nil, err
	}

	p := rowToPeriod(row)
	return &p, nil
}

func rowToPeriod(row generated.Period) domain.Period {
	return domain.Period{
		ID:        row.ID,
		Number:    int(row.PeriodNum),
		Month:     int(row.Month),
		Year:      int(row.Year),
		StartDate: pgDateToTime(row.StartDate),
		EndDate:   pgDateToTime(row.EndDate),
		IsCurrent: row.IsCurrent,
	}
}

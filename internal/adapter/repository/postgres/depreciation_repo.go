package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lmukoya96/FixedAssetsModule/internal/domain"
	"github.com/lmukoya96/FixedAssetsModule/internal/infrastructure/postgres/generated"
	"github.com/lmukoya96/FixedAssetsModule/internal/usecase"
)

// DepreciationRepository implements usecase.DepreciationRepository on the
// asset_depreciation table.
type DepreciationRepository struct {
	queries *generated.Queries
}

// NewDepreciationRepository creates a new DepreciationRepository.
func NewDepreciationRepository(pool *pgxpool.Pool) *DepreciationRepository {
	return newDepreciationRepository(pool)
}

func newDepreciationRepository(db generated.DBTX) *DepreciationRepository {
	return &DepreciationRepository{queries: generated.New(db)}
}

// Insert bulk-loads entries with COPY, preserving slice order.
func (r *DepreciationRepository) Insert(ctx context.Context, tx usecase.Transaction, entries []domain.DepreciationEntry) error {
	if len(entries) == 0 {
		return nil
	}

	params := make([]generated.InsertDepreciationEntriesParams, 0, len(entries))
	for _, e := range entries {
		year, number := keyParts(e.Period)
		params = append(params, generated.InsertDepreciationEntriesParams{
			AssetCode: e.AssetCode,
			PeriodKey: e.Period.String(),
			PeriodNum: number,
			Year:      year,
			Rate:      decimalToNumeric(e.Rate),
			Amount:    decimalToNumeric(e.Amount.Round(domain.LedgerPlaces)),
			BookValue: decimalToNumeric(e.BookValue.Round(domain.LedgerPlaces)),
		})
	}

	_, err := txQueries(tx).InsertDepreciationEntries(ctx, params)
	return err
}

// LastOrdinalBefore returns the highest row id strictly before period, or 0.
func (r *DepreciationRepository) LastOrdinalBefore(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (int64, error) {
	year, number := keyParts(period)
	return txQueries(tx).LastDepreciationOrdinalBefore(ctx, generated.LastDepreciationOrdinalBeforeParams{
		AssetCode: assetCode,
		Year:      year,
		PeriodNum: number,
	})
}

// DeleteAfterOrdinal removes every row of the asset with id > ordinal.
func (r *DepreciationRepository) DeleteAfterOrdinal(ctx context.Context, tx usecase.Transaction, assetCode string, ordinal int64) (int64, error) {
	return txQueries(tx).DeleteDepreciationAfterOrdinal(ctx, generated.DeleteDepreciationAfterOrdinalParams{
		AssetCode: assetCode,
		ID:        ordinal,
	})
}

// SumBefore returns the accumulated charge of rows strictly before period.
func (r *DepreciationRepository) SumBefore(ctx context.Context, tx usecase.Transaction, assetCode string, period domain.PeriodKey) (decimal.Decimal, error) {
	year, number := keyParts(period)
	sum, err := txQueries(tx).SumDepreciationBefore(ctx, generated.SumDepreciationBeforeParams{
		AssetCode: assetCode,
		Year:      year,
		PeriodNum: number,
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// History returns the asset's depreciation rows in period order.
func (r *DepreciationRepository) History(ctx context.Context, assetCode string) ([]domain.DepreciationEntry, error) {
	rows, err := r.queries.ListDepreciation(ctx, assetCode)
	if err != nil {
		return nil, err
	}

	return rowsToDepreciationEntries(rows), nil
}

// Range returns the rows inside the inclusive range.
func (r *DepreciationRepository) Range(ctx context.Context, assetCode string, pr domain.PeriodRange) ([]domain.DepreciationEntry, error) {
	fromYear, fromNum := keyParts(pr.From)
	toYear, toNum := keyParts(pr.To)

	rows, err := r.queries.ListDepreciationInRange(ctx, generated.ListDepreciationInRangeParams{
		AssetCode: assetCode,
		FromYear:  fromYear,
		FromNum:   fromNum,
		ToYear:    toYear,
		ToNum:     toNum,
	})
	if err != nil {
		return nil, err
	}

	return rowsToDepreciationEntries(rows), nil
}

// LastOfYear returns the highest-numbered row of the year, or nil.
func (r *DepreciationRepository) LastOfYear(ctx context.Context, assetCode string, year int) (*domain.DepreciationEntry, error) {
	row, err := r.queries.LastDepreciationOfYear(ctx, generated.LastDepreciationOfYearParams{
		AssetCode: assetCode,
		Year:      int32(year),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	e := rowToDepreciationEntry(row)
	return &e, nil
}

// Total sums charges across assets, optionally filtered by category and range.
func (r *DepreciationRepository) Total(ctx context.Context, filter domain.DepreciationTotalFilter) (decimal.Decimal, error) {
	params := generated.TotalDepreciationParams{
		CategoryCode: textOrNull(filter.CategoryCode),
	}
	if filter.Range != nil {
		fromYear, fromNum := keyParts(filter.Range.From)
		toYear, toNum := keyParts(filter.Range.To)
		params.FromYear = pgtype.Int4{Int32: fromYear, Valid: true}
		params.FromNum = pgtype.Int4{Int32: fromNum, Valid: true}
		params.ToYear = pgtype.Int4{Int32: toYear, Valid: true}
		params.ToNum = pgtype.Int4{Int32: toNum, Valid: true}
	}

	total, err := r.queries.TotalDepreciation(ctx, params)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(total), nil
}

func rowsToDepreciationEntries(rows []generated.AssetDepreciation) []domain.DepreciationEntry {
	entries := make([]domain.DepreciationEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToDepreciationEntry(row))
	}
	return entries
}

func rowToDepreciationEntry(row generated.AssetDepreciation) domain.DepreciationEntry {
	return domain.DepreciationEntry{
		ID:        row.ID,
		AssetCode: row.AssetCode,
		Period:    domain.PeriodKey(row.PeriodKey),
		Rate:      numericToDecimal(row.Rate),
		Amount:    numericToDecimal(row.Amount),
		BookValue: numericToDecimal(row.BookValue),
	}
}
